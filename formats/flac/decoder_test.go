// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/foxwav/audio"
)

// mockStream serves pre-built frames.
type mockStream struct {
	frames []*frame.Frame
	next   int
	err    error
	closed bool
}

func (m *mockStream) ParseNext() (*frame.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.next >= len(m.frames) {
		return nil, io.EOF
	}
	f := m.frames[m.next]
	m.next++
	return f, nil
}

func (m *mockStream) Close() error {
	m.closed = true
	return nil
}

// newFrame builds a frame from per-channel samples.
func newFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples, NSamples: len(samples)})
	}
	return f
}

func newTestSource(stream *mockStream, channels, bits int) *source {
	return &source{
		stream:     stream,
		sampleRate: 44100,
		channels:   channels,
		scale:      1 / float32(int64(1)<<(bits-1)),
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not FLAC data at all")},
		{"bad magic", []byte("fLaX\x00\x00\x00\x22")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrInvalidFLAC) {
				t.Errorf("Decode() error = %v, want ErrInvalidFLAC", err)
			}
		})
	}
}

func TestSource_AcrossFrames(t *testing.T) {
	t.Parallel()

	stream := &mockStream{frames: []*frame.Frame{
		newFrame([]int32{16384, 8192}, []int32{-16384, -8192}),
		newFrame([]int32{}, []int32{}),
		newFrame([]int32{0, 32767, -32768}, []int32{1, 2, 3}),
	}}

	buf, err := audio.ReadAll(newTestSource(stream, 2, 16))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !stream.closed {
		t.Error("stream not closed after ReadAll")
	}

	if buf.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", buf.Len())
	}

	wantLeft := []float64{0.5, 0.25, 0, 32767.0 / 32768, -1}
	for i, want := range wantLeft {
		if got := buf.Data[0][i]; got != want {
			t.Errorf("left[%d] = %v, want %v", i, got, want)
		}
	}
	if got := buf.Data[1][0]; got != -0.5 {
		t.Errorf("right[0] = %v, want -0.5", got)
	}
}

func TestSource_SmallDst(t *testing.T) {
	t.Parallel()

	stream := &mockStream{frames: []*frame.Frame{newFrame([]int32{1, 2, 3, 4})}}
	src := newTestSource(stream, 1, 8)

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if n != 3 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 3, nil", n, err)
	}
	n, err = src.ReadSamples(dst)
	if n != 1 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 1, nil", n, err)
	}
	if dst[0] != 4.0/128 {
		t.Errorf("dst[0] = %v, want %v", dst[0], 4.0/128)
	}
	if _, err := src.ReadSamples(dst); !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_ChannelMismatch(t *testing.T) {
	t.Parallel()

	stream := &mockStream{frames: []*frame.Frame{newFrame([]int32{1})}}
	if _, err := audio.ReadAll(newTestSource(stream, 2, 16)); !errors.Is(err, ErrInvalidFLAC) {
		t.Errorf("ReadAll() error = %v, want ErrInvalidFLAC", err)
	}
}

func TestSource_StreamError(t *testing.T) {
	t.Parallel()

	stream := &mockStream{err: io.ErrUnexpectedEOF}
	if _, err := audio.ReadAll(newTestSource(stream, 1, 16)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadAll() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	left := make([]int32, 4096)
	right := make([]int32, 4096)
	dst := make([]float32, 8192)

	for b.Loop() {
		frames := make([]*frame.Frame, 10)
		for i := range frames {
			frames[i] = newFrame(left, right)
		}
		src := newTestSource(&mockStream{frames: frames}, 2, 16)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
