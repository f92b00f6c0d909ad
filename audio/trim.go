// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MaxSamples returns floor(maxMs * sampleRate / 1000).
func MaxSamples(maxMs, sampleRate int) int {
	return int(int64(maxMs) * int64(sampleRate) / 1000)
}

// Trim cuts b to at most maxMs milliseconds.
//
// Longer buffers keep their first MaxSamples(maxMs, rate) samples with no
// fade. Shorter buffers are returned unchanged; Trim never pads or loops.
func Trim(b *Buffer, maxMs int) (*Buffer, error) {
	if maxMs <= 0 {
		return nil, fmt.Errorf("%w: %d ms", ErrInvalidDuration, maxMs)
	}

	limit := MaxSamples(maxMs, b.SampleRate)
	if b.Len() <= limit {
		return b, nil
	}

	out := make([][]float64, b.Channels())
	for c, ch := range b.Data {
		// Capacity is capped so appends on the result cannot reach into
		// the samples that were cut off.
		out[c] = ch[:limit:limit]
	}

	return &Buffer{SampleRate: b.SampleRate, Data: out}, nil
}
