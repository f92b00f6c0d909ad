// SPDX-License-Identifier: EPL-2.0

package foxwav

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/foxwav/audio"
)

const (
	DefaultSampleRate    = 22050
	DefaultBitDepth      = audio.Depth8
	DefaultMaxDurationMs = 5000
	DefaultHeadroomDB    = 3.0
)

// Settings configures a conversion. The zero value is not usable; start
// from DefaultSettings.
type Settings struct {
	SampleRate    int            // output rate in Hz
	BitDepth      audio.BitDepth // 8 or 16
	MaxDurationMs int            // output is cut after this many milliseconds
	HeadroomDB    float64        // peak level in dB below full scale
}

// DefaultSettings returns 22050 Hz, 8-bit, 5000 ms, 3 dB headroom.
func DefaultSettings() Settings {
	return Settings{
		SampleRate:    DefaultSampleRate,
		BitDepth:      DefaultBitDepth,
		MaxDurationMs: DefaultMaxDurationMs,
		HeadroomDB:    DefaultHeadroomDB,
	}
}

// Validate returns the settings a conversion will actually use.
//
// An unsupported bit depth is replaced by 8 bits and reported as a warning.
// A non-positive sample rate or duration, or a negative or non-finite
// headroom, is an error joining one audio sentinel per bad field. Convert
// and Process report it under ErrInvalidConfig.
func (s Settings) Validate() (Settings, []string, error) {
	var errs []error
	if s.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, s.SampleRate))
	}
	if s.MaxDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d ms", audio.ErrInvalidDuration, s.MaxDurationMs))
	}
	if s.HeadroomDB < 0 || math.IsNaN(s.HeadroomDB) || math.IsInf(s.HeadroomDB, 0) {
		errs = append(errs, fmt.Errorf("%w: %v", audio.ErrInvalidHeadroom, s.HeadroomDB))
	}
	if len(errs) > 0 {
		return s, nil, errors.Join(errs...)
	}

	var warnings []string
	if !s.BitDepth.IsValid() {
		warnings = append(warnings, fmt.Sprintf("unsupported bit depth %d, using %d-bit", int(s.BitDepth), int(audio.Depth8)))
		s.BitDepth = audio.Depth8
	}
	return s, warnings, nil
}
