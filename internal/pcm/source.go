// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer sample readers of the go-audio decoders to
// audio.Source.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported integer PCM bit depth")

// Reader is implemented by the go-audio wav and aiff decoders.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams integer PCM from a Reader as float32 samples in [-1, 1).
type Source struct {
	dec        Reader
	format     *goaudio.Format
	sampleRate int
	channels   int
	offset     int
	scale      float32
	buf        *goaudio.IntBuffer
}

// NewSource wraps dec. When unsigned is set the samples are offset-binary
// (8-bit WAV), otherwise two's complement.
func NewSource(dec Reader, format *goaudio.Format, bitDepth int, unsigned bool) (*Source, error) {
	scale, err := Scale(bitDepth)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:        dec,
		format:     format,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}
	if unsigned {
		s.offset = 1 << (bitDepth - 1)
	}
	return s, nil
}

// Scale returns the factor mapping a signed sample of bitDepth bits to
// [-1, 1).
func Scale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return 1 / float32(int64(1)<<(bitDepth-1)), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.offset) * s.scale
	}

	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}
