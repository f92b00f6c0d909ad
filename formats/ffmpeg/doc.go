// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg decodes audio by running the ffmpeg and ffprobe binaries.
//
// It covers container formats with no native Go decoder, such as m4a, aac
// and wma. The binaries are located through PATH unless Decoder names them:
//
//	dec := ffmpeg.Decoder{FFmpegPath: "/opt/ffmpeg/bin/ffmpeg"}
//	src, err := dec.DecodeFile(ctx, "message.m4a")
//
// When only FFmpegPath is set, ffprobe is looked up in the same directory.
// The decoded stream keeps the source rate and channel count and is
// delivered as 16-bit precision samples.
package ffmpeg
