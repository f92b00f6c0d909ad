// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrInvalidVorbis is returned when the stream is not Ogg Vorbis.
	ErrInvalidVorbis = errors.New("not an Ogg Vorbis stream")

	// ErrNoChannels is returned for a stream header without channels.
	ErrNoChannels = errors.New("vorbis stream has no channels")
)
