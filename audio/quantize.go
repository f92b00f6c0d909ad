// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/foxwav/utils"
)

// BitDepth is the sample width of quantized output.
type BitDepth int

const (
	Depth8  BitDepth = 8  // unsigned offset-binary
	Depth16 BitDepth = 16 // signed little-endian
)

// IsValid reports whether d is a supported output depth.
func (d BitDepth) IsValid() bool {
	return d == Depth8 || d == Depth16
}

// BytesPerSample returns the byte width of one sample, or 0 for an
// unsupported depth.
func (d BitDepth) BytesPerSample() int {
	switch d {
	case Depth8:
		return 1
	case Depth16:
		return 2
	}
	return 0
}

func (d BitDepth) String() string {
	return fmt.Sprintf("%d-bit", int(d))
}

// Quantize converts b into integer PCM bytes at depth d.
//
// 8-bit samples map to round((s+1) * 127.5) clamped to [0, 255], so silence
// is 128. 16-bit samples map to round(s * 32767) clamped to the int16 range
// and are written little-endian. Halves round away from zero. Channels are
// interleaved frame by frame.
func Quantize(b *Buffer, d BitDepth) ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, int(d))
	}

	channels := b.Channels()
	frames := b.Len()
	width := d.BytesPerSample()
	out := make([]byte, frames*channels*width)

	pos := 0
	for f := range frames {
		for c := range channels {
			s := b.Data[c][f]
			switch d {
			case Depth8:
				out[pos] = utils.Float64ToUint8(s)
			case Depth16:
				binary.LittleEndian.PutUint16(out[pos:], uint16(utils.Float64ToInt16(s)))
			}
			pos += width
		}
	}

	return out, nil
}
