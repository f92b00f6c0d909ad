// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/foxwav/utils"
)

// TargetPeak returns the amplitude headroomDB decibels below full scale.
func TargetPeak(headroomDB float64) float64 {
	return utils.DBToAmplitude(-headroomDB)
}

// Normalize scales b so its peak lands exactly headroomDB below full scale.
//
// Silence is returned unchanged. Every sample is computed as
// s / peak * target, so no output magnitude can exceed the target and the
// stage never clips, whatever the input level. headroomDB must be a finite
// value of at least zero.
func Normalize(b *Buffer, headroomDB float64) (*Buffer, error) {
	if headroomDB < 0 || math.IsNaN(headroomDB) || math.IsInf(headroomDB, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeadroom, headroomDB)
	}

	peak := b.Peak()
	if peak == 0 {
		return b, nil
	}

	target := TargetPeak(headroomDB)
	out := make([][]float64, b.Channels())
	for c, ch := range b.Data {
		scaled := make([]float64, len(ch))
		for i, s := range ch {
			scaled[i] = s / peak * target
		}
		out[c] = scaled
	}

	return &Buffer{SampleRate: b.SampleRate, Data: out}, nil
}
