// SPDX-License-Identifier: EPL-2.0

package foxwav

import (
	"github.com/ik5/foxwav/audio"
	"github.com/ik5/foxwav/formats/aiff"
	"github.com/ik5/foxwav/formats/ffmpeg"
	"github.com/ik5/foxwav/formats/flac"
	"github.com/ik5/foxwav/formats/mp3"
	"github.com/ik5/foxwav/formats/vorbis"
	"github.com/ik5/foxwav/formats/wav"
)

// FFmpegFormats are decoded through the ffmpeg binary.
var FFmpegFormats = []string{"m4a", "aac", "wma"}

// NewDefaultRegistry registers the native Go decoders and routes the
// remaining formats to ffmpeg. An empty ffmpegPath looks ffmpeg up on PATH.
func NewDefaultRegistry(ffmpegPath string) *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	ff := ffmpeg.Decoder{FFmpegPath: ffmpegPath}
	for _, f := range FFmpegFormats {
		reg.Register(f, ff)
	}

	return reg
}
