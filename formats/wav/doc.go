// SPDX-License-Identifier: EPL-2.0

// Package wav decodes integer PCM WAV files and writes the canonical
// uncompressed WAV container.
//
// # Decoding
//
// Decoder reads 8, 16, 24 and 32-bit integer PCM with any channel count and
// sample rate, using github.com/go-audio/wav for chunk parsing. 8-bit WAV
// data is unsigned and is re-centred on zero before scaling.
//
//	f, _ := os.Open("input.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrOnlyPCMSupported, ...
//	}
//	buf, err := audio.ReadAll(src)
//
// Compressed or floating point WAV files are rejected with
// ErrOnlyPCMSupported.
//
// # Encoding
//
// Encode writes a 44-byte header followed by an already quantized payload:
//
//	n, err := wav.Encode(w, wav.Format{SampleRate: 22050, Channels: 1, BitDepth: 8}, payload)
//
// The header layout is
//   - RIFF descriptor (12 bytes): "RIFF", file size minus 8, "WAVE"
//   - fmt chunk (24 bytes): format tag 1, channels, sample rate, byte rate,
//     block align, bits per sample
//   - data chunk header (8 bytes): "data", payload length
//
// All fields are little-endian. An odd payload is followed by one pad byte
// that is counted in the RIFF size but not in the data size.
package wav
