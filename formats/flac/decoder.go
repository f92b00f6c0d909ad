// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/foxwav/audio"
)

// frameReader is the part of flac.Stream the source needs, to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	scale      float32

	// Decoded samples of the current frame and the next frame index to emit.
	frame *frame.Frame
	pos   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n+s.channels <= len(dst) {
		if s.frame == nil || s.pos >= s.frame.Subframes[0].NSamples {
			f, err := s.stream.ParseNext()
			if err != nil {
				if n > 0 && err == io.EOF {
					return n, nil
				}
				return n, err
			}
			if len(f.Subframes) != s.channels {
				return n, fmt.Errorf("%w: frame has %d channels, stream has %d",
					ErrInvalidFLAC, len(f.Subframes), s.channels)
			}
			s.frame, s.pos = f, 0
			continue
		}

		for c := range s.channels {
			dst[n+c] = float32(s.frame.Subframes[c].Samples[s.pos]) * s.scale
		}
		n += s.channels
		s.pos++
	}
	return n, nil
}

// Decoder reads FLAC streams with github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFLAC, err)
	}

	info := stream.Info
	if info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, fmt.Errorf("%w: empty stream info", ErrInvalidFLAC)
	}
	if info.BitsPerSample == 0 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1 / float32(int64(1)<<(info.BitsPerSample-1)),
	}, nil
}
