// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio using github.com/mewkiz/flac.
//
// Every bit depth from 1 to 32 bits is scaled to float32 in [-1.0, 1.0) and
// the stream's channel count and sample rate are kept. Frames are decoded
// one at a time as the source is read.
//
//	f, _ := os.Open("input.flac")
//	src, err := flac.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrInvalidFLAC
//	}
//	buf, err := audio.ReadAll(src)
package flac
