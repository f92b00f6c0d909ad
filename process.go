// SPDX-License-Identifier: EPL-2.0

package foxwav

import (
	"fmt"
	"log/slog"

	"github.com/ik5/foxwav/audio"
)

// Process runs the signal stages on a decoded buffer: downmix to mono,
// resample to s.SampleRate, trim to s.MaxDurationMs and peak-normalize to
// s.HeadroomDB. Quantization and encoding are left to the caller.
func Process(b *audio.Buffer, s Settings) (*audio.Buffer, error) {
	eff, _, err := s.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return process(b, eff, slog.New(slog.DiscardHandler))
}

// process expects validated settings. Each stage is logged only when it
// changes something.
func process(b *audio.Buffer, s Settings, log *slog.Logger) (*audio.Buffer, error) {
	if b.Channels() > 1 {
		log.Debug("converting to mono", "channels", b.Channels())
	}
	b, err := audio.Downmix(b)
	if err != nil {
		return nil, err
	}

	if b.SampleRate != s.SampleRate {
		log.Debug("resampling", "from", b.SampleRate, "to", s.SampleRate)
	}
	b, err = audio.Resample(b, s.SampleRate)
	if err != nil {
		return nil, err
	}

	if b.Len() > audio.MaxSamples(s.MaxDurationMs, b.SampleRate) {
		log.Debug("trimming", "from", b.Duration(), "max_ms", s.MaxDurationMs)
	}
	b, err = audio.Trim(b, s.MaxDurationMs)
	if err != nil {
		return nil, err
	}

	log.Debug("normalizing", "peak", b.Peak(), "headroom_db", s.HeadroomDB)
	return audio.Normalize(b, s.HeadroomDB)
}
