// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the file. AIFF is
// Apple's uncompressed audio format and is common on macOS.
//
// # Supported Formats
//
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - Any channel count
//   - Any sample rate
//
// AIFF-C files with a compression type are not decoded.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth, ...
//	}
//	buf, err := audio.ReadAll(src)
//
// Samples are delivered as float32 values in [-1.0, 1.0). A reader without
// Seek is buffered in memory first, since the chunk parser needs to seek.
package aiff
