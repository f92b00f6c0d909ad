// SPDX-License-Identifier: EPL-2.0

package foxwav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ik5/foxwav/audio"
	"github.com/ik5/foxwav/formats/wav"
)

// Option configures a Converter.
type Option func(*Converter)

// WithRegistry replaces the default decoder registry.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Converter) { c.registry = r }
}

// WithLogger sets the logger for stage progress and warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) { c.log = l }
}

// Converter runs the conversion pipeline. It holds no per-file state and
// is safe for concurrent use.
type Converter struct {
	registry *audio.Registry
	log      *slog.Logger
}

// NewConverter returns a Converter using NewDefaultRegistry("") and
// slog.Default unless overridden.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = NewDefaultRegistry("")
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Convert decodes inputPath, runs it through the pipeline and writes the
// resulting WAV to w.
func (c *Converter) Convert(ctx context.Context, inputPath string, w io.Writer, s Settings) (*Report, error) {
	eff, warnings, err := s.Validate()
	if err != nil {
		return nil, newError(StageConfig, inputPath, ErrInvalidConfig, err)
	}
	for _, msg := range warnings {
		c.log.Warn(msg, "input", inputPath)
	}

	in, err := c.decode(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	log := c.log.With("input", inputPath)
	log.Debug("decoded input",
		"sample_rate", in.SampleRate,
		"channels", in.Channels(),
		"duration", in.Duration(),
	)

	out, err := process(in, eff, log)
	if err != nil {
		kind := ErrInvalidConfig
		if errors.Is(err, audio.ErrNoChannels) || errors.Is(err, audio.ErrEmptyBuffer) {
			kind = ErrInvalidAudio
		}
		return nil, newError(StageProcess, inputPath, kind, err)
	}

	payload, err := audio.Quantize(out, eff.BitDepth)
	if err != nil {
		return nil, newError(StageEncode, inputPath, ErrInvalidConfig, err)
	}

	format := wav.Format{
		SampleRate: out.SampleRate,
		Channels:   out.Channels(),
		BitDepth:   int(eff.BitDepth),
	}
	n, err := wav.Encode(w, format, payload)
	if err != nil {
		return nil, newError(StageWrite, inputPath, ErrIO, err)
	}

	return &Report{
		OutputSize:       n,
		Duration:         out.Duration(),
		SampleRate:       out.SampleRate,
		BitDepth:         eff.BitDepth,
		Channels:         out.Channels(),
		SourceSampleRate: in.SampleRate,
		SourceChannels:   in.Channels(),
		SourceDuration:   in.Duration(),
		Warnings:         warnings,
	}, nil
}

// ConvertFile converts inputPath into a WAV file at outputPath.
//
// The output is written to a temporary file in the destination directory
// and renamed into place once complete, so a failed conversion never
// leaves a partial file behind.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string, s Settings) (rep *Report, err error) {
	dir := filepath.Dir(outputPath)
	tmpPath := filepath.Join(dir, "."+filepath.Base(outputPath)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, newError(StageWrite, inputPath, ErrIO, err)
	}
	defer func() {
		if err != nil {
			if rerr := os.Remove(tmpPath); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
				c.log.Warn("removing temporary output", "path", tmpPath, "err", rerr)
			}
		}
	}()

	rep, err = c.Convert(ctx, inputPath, f, s)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = newError(StageWrite, inputPath, ErrIO, cerr)
	}
	if err != nil {
		return nil, err
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		return nil, newError(StageWrite, inputPath, ErrIO, err)
	}

	rep.OutputPath = outputPath
	return rep, nil
}

func (c *Converter) decode(ctx context.Context, path string) (*audio.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, newError(StageDecode, path, ErrDecode, err)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(StageDecode, path, ErrInputNotFound, err)
		}
		return nil, newError(StageDecode, path, ErrDecode, err)
	}

	dec, ok := c.registry.Lookup(path)
	if !ok {
		return nil, newError(StageDecode, path, ErrDecode,
			fmt.Errorf("unsupported format %q", filepath.Ext(path)))
	}

	src, err := open(ctx, dec, path)
	if err != nil {
		return nil, newError(StageDecode, path, ErrDecode, err)
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		if errors.Is(err, audio.ErrNoChannels) || errors.Is(err, audio.ErrEmptyBuffer) {
			return nil, newError(StageDecode, path, ErrInvalidAudio, err)
		}
		return nil, newError(StageDecode, path, ErrDecode, err)
	}
	return buf, nil
}

// open starts decoding path. ReadAll closes the returned source; the file
// backing a reader-based decoder is closed along with it.
func open(ctx context.Context, dec audio.Decoder, path string) (audio.Source, error) {
	if fd, ok := dec.(audio.FileDecoder); ok {
		return fd.DecodeFile(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileSource{Source: src, file: f}, nil
}

type fileSource struct {
	audio.Source
	file *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// Convert runs the pipeline with the default registry and logger.
func Convert(ctx context.Context, inputPath string, w io.Writer, s Settings) (*Report, error) {
	return NewConverter().Convert(ctx, inputPath, w, s)
}

// ConvertFile runs the pipeline with the default registry and logger.
func ConvertFile(ctx context.Context, inputPath, outputPath string, s Settings) (*Report, error) {
	return NewConverter().ConvertFile(ctx, inputPath, outputPath, s)
}
