// SPDX-License-Identifier: EPL-2.0

package foxwav

import (
	"time"

	"github.com/ik5/foxwav/audio"
)

// Report describes a finished conversion.
type Report struct {
	// OutputPath is empty when the output went to a caller supplied writer.
	OutputPath string
	OutputSize int64

	Duration   time.Duration
	SampleRate int
	BitDepth   audio.BitDepth
	Channels   int

	SourceSampleRate int
	SourceChannels   int
	SourceDuration   time.Duration

	// Warnings lists settings that were replaced by fallbacks.
	Warnings []string
}

// DurationSeconds returns the output duration in seconds.
func (r *Report) DurationSeconds() float64 {
	return r.Duration.Seconds()
}
