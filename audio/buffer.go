// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer is a fully decoded block of PCM audio.
//
// Data holds one slice per channel and every channel has the same length.
// Samples are float64 in the nominal range [-1.0, 1.0].
//
// Processing stages treat a Buffer as immutable: a stage that changes the
// signal, rate or channel layout returns a new Buffer, and a stage with
// nothing to do returns its input unchanged.
type Buffer struct {
	SampleRate int
	Data       [][]float64
}

// NewBuffer validates the channel layout and returns a Buffer that owns data.
func NewBuffer(sampleRate int, data [][]float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	for c := 1; c < len(data); c++ {
		if len(data[c]) != len(data[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrRaggedChannels, c, len(data[c]), len(data[0]))
		}
	}

	return &Buffer{SampleRate: sampleRate, Data: data}, nil
}

// NewMonoBuffer wraps a single channel of samples.
func NewMonoBuffer(sampleRate int, samples []float64) (*Buffer, error) {
	return NewBuffer(sampleRate, [][]float64{samples})
}

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(b.Len()) * int64(time.Second) / int64(b.SampleRate))
}

// Peak returns the largest absolute sample value over all channels.
func (b *Buffer) Peak() float64 {
	var peak float64
	for _, ch := range b.Data {
		for _, s := range ch {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}
	return peak
}
