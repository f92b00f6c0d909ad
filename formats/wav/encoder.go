// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HeaderSize is the length of the canonical RIFF/WAVE header written by
// Encode.
const HeaderSize = 44

// Format describes the PCM payload handed to Encode.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// BlockAlign returns the number of bytes in one frame.
func (f Format) BlockAlign() int { return f.Channels * f.BitDepth / 8 }

// ByteRate returns the number of payload bytes per second.
func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

func (f Format) validate() error {
	switch {
	case f.SampleRate <= 0 || int64(f.SampleRate) > math.MaxUint32:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, f.SampleRate)
	case f.Channels <= 0 || f.Channels > math.MaxUint16:
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, f.Channels)
	}

	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d bits per sample", ErrInvalidFormat, f.BitDepth)
	}

	if int64(f.SampleRate)*int64(f.BlockAlign()) > math.MaxUint32 || f.BlockAlign() > math.MaxUint16 {
		return fmt.Errorf("%w: byte rate overflows the header", ErrInvalidFormat)
	}
	return nil
}

// Encode writes payload as an uncompressed PCM WAV with a 44-byte header.
//
// payload must already be in WAV sample order: unsigned for 8 bits,
// little-endian two's complement otherwise, channels interleaved. The data
// chunk size equals len(payload) and a single pad byte follows an odd
// payload, so the RIFF size field is always the file size minus 8.
// Encode returns the number of bytes written.
func Encode(w io.Writer, f Format, payload []byte) (int64, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}
	if len(payload)%f.BlockAlign() != 0 {
		return 0, fmt.Errorf("%w: %d bytes, block align %d", ErrPartialFrame, len(payload), f.BlockAlign())
	}

	pad := len(payload) & 1
	if int64(len(payload))+int64(pad)+HeaderSize-8 > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, len(payload))
	}

	dataSize := uint32(len(payload))
	riffSize := uint32(HeaderSize-8) + dataSize + uint32(pad)

	header := make([]byte, HeaderSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitDepth))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	var written int64
	n, err := w.Write(header)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("writing wav header: %w", err)
	}

	n, err = w.Write(payload)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("writing wav data: %w", err)
	}

	if pad == 1 {
		n, err = w.Write([]byte{0})
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("writing wav pad byte: %w", err)
		}
	}

	return written, nil
}
