// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "errors"

var (
	ErrProbe         = errors.New("ffprobe failed")
	ErrNoAudioStream = errors.New("no audio stream found")
	ErrFFmpeg        = errors.New("ffmpeg failed")
)
