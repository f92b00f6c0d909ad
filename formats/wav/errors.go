// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrOnlyPCMSupported = errors.New("only integer PCM WAV is supported")
	ErrInvalidFormat    = errors.New("invalid WAV format")
	ErrPartialFrame     = errors.New("payload is not a whole number of frames")
	ErrDataTooLarge     = errors.New("payload exceeds the WAV size limit")
)
