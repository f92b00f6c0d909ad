// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix mixes every channel of b into a single channel.
//
// Each output sample is the arithmetic mean of the input channels at that
// position, so no channel is weighted above another. Mono input is returned
// as is.
func Downmix(b *Buffer) (*Buffer, error) {
	channels := b.Channels()
	switch channels {
	case 0:
		return nil, ErrNoChannels
	case 1:
		return b, nil
	}

	frames := b.Len()
	out := make([]float64, frames)

	switch channels {
	case 2: // Stereo (most common)
		left, right := b.Data[0], b.Data[1]
		for f := range frames {
			out[f] = (left[f] + right[f]) * 0.5
		}
	default:
		for _, ch := range b.Data {
			for f, s := range ch {
				out[f] += s
			}
		}
		inv := 1.0 / float64(channels)
		for f := range out {
			out[f] *= inv
		}
	}

	return &Buffer{SampleRate: b.SampleRate, Data: [][]float64{out}}, nil
}
