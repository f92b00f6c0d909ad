// SPDX-License-Identifier: EPL-2.0

// Package foxwav converts audio files into small, device-ready WAV files.
//
// Output is always mono, uncompressed PCM at a fixed rate and bit depth,
// cut to a maximum duration and peak-normalized below full scale. The
// defaults are 22050 Hz, 8-bit unsigned samples, 5 seconds and 3 dB of
// headroom.
//
// # Supported Formats
//
// Decoding is native Go for:
//   - WAV (8/16/24/32-bit integer PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//   - AIFF via formats/aiff
//
// m4a, aac and wma are decoded by running ffmpeg (formats/ffmpeg).
//
// # Quick Start
//
//	rep, err := foxwav.ConvertFile(ctx, "greeting.mp3", "foxmessage.wav", foxwav.DefaultSettings())
//	if err != nil {
//	    // errors.Is(err, foxwav.ErrInputNotFound), ErrDecode, ...
//	}
//	fmt.Println(rep.OutputSize, rep.DurationSeconds())
//
// Convert writes to any io.Writer instead of a file. A Converter built with
// NewConverter can be given its own decoder registry and logger and is safe
// to share between goroutines.
//
// # Pipeline
//
// Each file goes through these stages in order, each implemented in the
// audio package:
//
//	decode → downmix → resample → trim → normalize → quantize → encode
//
// Process runs the middle four stages on an already decoded buffer.
//
// # Settings
//
// Settings.Validate is applied at the start of every conversion. An
// unsupported bit depth falls back to 8 bits and is reported in
// Report.Warnings; a non-positive rate or duration and a negative headroom
// fail with ErrInvalidConfig.
//
// # Errors
//
// Failures are returned as *ConversionError, which matches one of
// ErrInputNotFound, ErrDecode, ErrInvalidAudio, ErrInvalidConfig or ErrIO
// as well as the underlying cause.
package foxwav
