// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrInvalidFLAC is returned when the stream has no valid FLAC header.
	ErrInvalidFLAC = errors.New("not a FLAC stream")

	// ErrUnsupportedBitDepth is returned for sample widths above 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)
