// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio using github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels: go-mp3 expands mono streams to
// interleaved stereo, so a mono file comes back with identical left and
// right channels and downmixes to the original signal.
//
//	f, _ := os.Open("input.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrInvalidMP3
//	}
//	buf, err := audio.ReadAll(src)
//
// Samples are delivered as float32 values in [-1.0, 1.0).
package mp3
