// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	gowav "github.com/go-audio/wav"
)

func TestEncode_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		payload []byte
	}{
		{"8-bit mono", Format{SampleRate: 22050, Channels: 1, BitDepth: 8}, []byte{128, 129, 200, 0}},
		{"8-bit odd length", Format{SampleRate: 22050, Channels: 1, BitDepth: 8}, []byte{128, 129, 130}},
		{"16-bit mono", Format{SampleRate: 16000, Channels: 1, BitDepth: 16}, []byte{0, 0, 0xFF, 0x7F}},
		{"16-bit stereo", Format{SampleRate: 44100, Channels: 2, BitDepth: 16}, make([]byte, 16)},
		{"empty", Format{SampleRate: 8000, Channels: 1, BitDepth: 8}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			n, err := Encode(&out, tt.format, tt.payload)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			data := out.Bytes()
			if n != int64(len(data)) {
				t.Errorf("Encode() n = %d, wrote %d bytes", n, len(data))
			}

			pad := len(tt.payload) & 1
			if len(data) != HeaderSize+len(tt.payload)+pad {
				t.Errorf("file size = %d, want %d", len(data), HeaderSize+len(tt.payload)+pad)
			}

			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
				t.Errorf("markers = %q %q", data[0:4], data[8:12])
			}
			if got := binary.LittleEndian.Uint32(data[4:8]); int(got) != len(data)-8 {
				t.Errorf("RIFF size = %d, want %d", got, len(data)-8)
			}
			if got := binary.LittleEndian.Uint32(data[40:44]); int(got) != len(tt.payload) {
				t.Errorf("data size = %d, want %d", got, len(tt.payload))
			}

			blockAlign := tt.format.Channels * tt.format.BitDepth / 8
			if got := binary.LittleEndian.Uint16(data[32:34]); int(got) != blockAlign {
				t.Errorf("block align = %d, want %d", got, blockAlign)
			}
			if got := binary.LittleEndian.Uint32(data[28:32]); int(got) != tt.format.SampleRate*blockAlign {
				t.Errorf("byte rate = %d, want %d", got, tt.format.SampleRate*blockAlign)
			}
			if !bytes.Equal(data[HeaderSize:HeaderSize+len(tt.payload)], tt.payload) {
				t.Error("payload not copied verbatim")
			}
		})
	}
}

func TestEncode_ReferenceParser(t *testing.T) {
	t.Parallel()

	tests := []Format{
		{SampleRate: 22050, Channels: 1, BitDepth: 8},
		{SampleRate: 11025, Channels: 1, BitDepth: 16},
	}

	for _, f := range tests {
		t.Run(fmt.Sprintf("%d-bit", f.BitDepth), func(t *testing.T) {
			t.Parallel()

			payload := make([]byte, 100*f.BlockAlign())
			for i := range payload {
				payload[i] = byte(i)
			}

			var out bytes.Buffer
			if _, err := Encode(&out, f, payload); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			dec := gowav.NewDecoder(bytes.NewReader(out.Bytes()))
			if !dec.IsValidFile() {
				t.Fatal("reference parser rejected the file")
			}
			if int(dec.SampleRate) != f.SampleRate {
				t.Errorf("SampleRate = %d, want %d", dec.SampleRate, f.SampleRate)
			}
			if dec.NumChans != 1 {
				t.Errorf("NumChans = %d, want 1", dec.NumChans)
			}
			if int(dec.BitDepth) != f.BitDepth {
				t.Errorf("BitDepth = %d, want %d", dec.BitDepth, f.BitDepth)
			}
			if dec.WavAudioFormat != 1 {
				t.Errorf("WavAudioFormat = %d, want 1", dec.WavAudioFormat)
			}

			buf, err := dec.FullPCMBuffer()
			if err != nil {
				t.Fatalf("FullPCMBuffer() error = %v", err)
			}
			if len(buf.Data) != 100 {
				t.Errorf("reference parser read %d samples, want 100", len(buf.Data))
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		payload []byte
		want    error
	}{
		{"zero rate", Format{SampleRate: 0, Channels: 1, BitDepth: 8}, nil, ErrInvalidFormat},
		{"negative rate", Format{SampleRate: -1, Channels: 1, BitDepth: 8}, nil, ErrInvalidFormat},
		{"no channels", Format{SampleRate: 8000, Channels: 0, BitDepth: 8}, nil, ErrInvalidFormat},
		{"12-bit", Format{SampleRate: 8000, Channels: 1, BitDepth: 12}, nil, ErrInvalidFormat},
		{"partial frame", Format{SampleRate: 8000, Channels: 1, BitDepth: 16}, []byte{1, 2, 3}, ErrPartialFrame},
		{"partial stereo frame", Format{SampleRate: 8000, Channels: 2, BitDepth: 8}, []byte{1}, ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			_, err := Encode(&out, tt.format, tt.payload)
			if !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("Encode() wrote %d bytes on error", out.Len())
			}
		})
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestEncode_WriteError(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 8000, Channels: 1, BitDepth: 8}
	for after := range 3 {
		w := &failingWriter{after: after}
		if _, err := Encode(w, f, []byte{1, 2, 3}); err == nil {
			t.Errorf("Encode() with writer failing after %d writes: error = nil", after)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	payload := make([]byte, 110250)
	f := Format{SampleRate: 22050, Channels: 1, BitDepth: 8}
	var out bytes.Buffer

	for b.Loop() {
		out.Reset()
		if _, err := Encode(&out, f, payload); err != nil {
			b.Fatal(err)
		}
	}
}
