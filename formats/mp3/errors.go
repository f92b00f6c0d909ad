// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrInvalidMP3 is returned when the stream has no decodable MP3 frame.
var ErrInvalidMP3 = errors.New("not a decodable MP3 stream")
