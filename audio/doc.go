// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM buffer, the decoder boundary and the
// processing stages of the conversion pipeline.
//
// # Sources and Buffers
//
// Decoders produce a streaming Source of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer, which holds one float64 slice per
// channel. Every stage below takes a *Buffer and returns a *Buffer. A stage
// with nothing to do returns its input, otherwise it allocates a new one;
// inputs are never modified.
//
// # Stages
//
// The stages run in this order:
//
//	buf, _ = audio.Downmix(buf)           // mean of all channels
//	buf, _ = audio.Resample(buf, 22050)   // windowed-sinc
//	buf, _ = audio.Trim(buf, 5000)        // first 5000 ms
//	buf, _ = audio.Normalize(buf, 3)      // peak at -3 dBFS
//	pcm, _ := audio.Quantize(buf, audio.Depth8)
//
// Resample uses a Blackman-windowed sinc kernel with 16 zero crossings per
// side and a cutoff at 95% of the lower Nyquist frequency. Content above
// the target Nyquist limit is attenuated rather than aliased.
//
// Normalize scales by target/peak, leaves silence untouched and never
// pushes a sample past the target level.
//
// Quantize rounds halves away from zero. 8-bit output is unsigned
// offset-binary with silence at 128; 16-bit output is signed little-endian.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Lookup("message.WAV")
//
// Extensions are matched case-insensitively with or without the dot.
//
// # Sample Format
//
// Samples are nominally in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Intermediate stages may exceed that range; Normalize brings the signal
// back under full scale before it is quantized.
package audio
