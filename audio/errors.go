// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels          = errors.New("audio has no channels")
	ErrEmptyBuffer         = errors.New("audio has no samples")
	ErrRaggedChannels      = errors.New("channels differ in length")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidDuration     = errors.New("max duration must be positive")
	ErrInvalidHeadroom     = errors.New("headroom must be a finite, non-negative dB value")
	ErrUnsupportedBitDepth = errors.New("bit depth must be 8 or 16")
)
