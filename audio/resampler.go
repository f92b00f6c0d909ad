// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/foxwav/utils"
)

const (
	// Zero crossings of the sinc kernel on each side of the centre tap.
	sincZeroCrossings = 16

	// Passband edge as a fraction of the lower Nyquist frequency. The gap
	// up to Nyquist holds the filter's transition band.
	sincRolloff = 0.95
)

// Resample converts b to dstRate using windowed-sinc interpolation.
//
// The kernel is a Blackman-windowed sinc whose cutoff sits just below the
// Nyquist limit of the lower of the two rates, so downsampling removes
// content the new rate cannot represent instead of folding it back as
// aliasing, and upsampling interpolates without stair steps. The first
// and last samples are held beyond the buffer edges, so a clip that starts
// or ends above zero does not ring.
//
// The output holds round(len * dstRate / srcRate) samples per channel.
// Both rates must be positive; equal rates return b unchanged.
func Resample(b *Buffer, dstRate int) (*Buffer, error) {
	if b.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: source rate %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target rate %d", ErrInvalidSampleRate, dstRate)
	}
	if b.SampleRate == dstRate {
		return b, nil
	}

	srcLen := b.Len()
	dstLen := ResampledLength(srcLen, b.SampleRate, dstRate)

	k := newSincKernel(b.SampleRate, dstRate)
	out := make([][]float64, b.Channels())
	for c, ch := range b.Data {
		out[c] = k.apply(ch, dstLen)
	}

	return &Buffer{SampleRate: dstRate, Data: out}, nil
}

// ResampledLength returns round(n * dstRate / srcRate), rounding halves up.
func ResampledLength(n, srcRate, dstRate int) int {
	num := int64(n)*int64(dstRate)*2 + int64(srcRate)
	return int(num / (2 * int64(srcRate)))
}

type sincKernel struct {
	step      float64 // source samples per output sample
	cutoff    float64 // normalized to the source Nyquist frequency
	halfWidth float64 // kernel half-length in source samples
	gain      float64
}

func newSincKernel(srcRate, dstRate int) sincKernel {
	ratio := float64(dstRate) / float64(srcRate)
	cutoff := sincRolloff * math.Min(1, ratio)
	return sincKernel{
		step:      float64(srcRate) / float64(dstRate),
		cutoff:    cutoff,
		halfWidth: sincZeroCrossings / cutoff,
		gain:      cutoff,
	}
}

// weight returns the kernel value at distance x (in source samples) from
// the interpolation point.
func (k sincKernel) weight(x float64) float64 {
	if x <= -k.halfWidth || x >= k.halfWidth {
		return 0
	}
	return k.gain * utils.Sinc(k.cutoff*x) * utils.Blackman(x/k.halfWidth)
}

func (k sincKernel) apply(src []float64, dstLen int) []float64 {
	out := make([]float64, dstLen)
	if len(src) == 0 {
		return out
	}
	last := len(src) - 1

	for j := range dstLen {
		t := float64(j) * k.step

		lo := int(math.Ceil(t - k.halfWidth))
		hi := int(math.Floor(t + k.halfWidth))

		var acc float64
		for i := lo; i <= hi; i++ {
			// Taps past either end repeat the edge sample.
			acc += src[min(max(i, 0), last)] * k.weight(t-float64(i))
		}
		out[j] = acc
	}

	return out
}
