// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio using github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("input.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrInvalidVorbis
//	}
//	buf, err := audio.ReadAll(src)
//
// The source keeps the channel count and rate of the stream. Vorbis decodes
// to floating point natively, so samples are passed through without any
// integer scaling.
package vorbis
