// SPDX-License-Identifier: EPL-2.0

// Package config loads the optional foxwav YAML configuration file.
package config

import (
	"log/slog"

	"github.com/ik5/foxwav"
	"github.com/ik5/foxwav/audio"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level returns the slog level for l. Unknown values map to Info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config is the top-level configuration.
type Config struct {
	LogLevel   LogLevel         `yaml:"log_level"`
	Conversion ConversionConfig `yaml:"conversion"`
	Batch      BatchConfig      `yaml:"batch"`

	// FFmpegPath locates the ffmpeg binary. Empty searches PATH.
	FFmpegPath string `yaml:"ffmpeg_path"`
}

// ConversionConfig mirrors foxwav.Settings.
type ConversionConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	BitDepth      int     `yaml:"bit_depth"`
	MaxDurationMs int     `yaml:"max_duration_ms"`
	HeadroomDB    float64 `yaml:"headroom_db"`
}

// BatchConfig configures batch mode.
type BatchConfig struct {
	// Workers bounds concurrent conversions; zero uses GOMAXPROCS.
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	s := foxwav.DefaultSettings()
	return &Config{
		LogLevel: LogInfo,
		Conversion: ConversionConfig{
			SampleRate:    s.SampleRate,
			BitDepth:      int(s.BitDepth),
			MaxDurationMs: s.MaxDurationMs,
			HeadroomDB:    s.HeadroomDB,
		},
		Batch: BatchConfig{
			OutputDir: "converted",
		},
	}
}

// Settings returns the conversion settings described by c.
func (c *Config) Settings() foxwav.Settings {
	return foxwav.Settings{
		SampleRate:    c.Conversion.SampleRate,
		BitDepth:      audio.BitDepth(c.Conversion.BitDepth),
		MaxDurationMs: c.Conversion.MaxDurationMs,
		HeadroomDB:    c.Conversion.HeadroomDB,
	}
}
