// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/foxwav/audio"
)

const (
	DefaultFFmpeg  = "ffmpeg"
	DefaultFFprobe = "ffprobe"
)

// Decoder decodes any format the local ffmpeg build understands. The
// stream is probed with ffprobe for its rate and channel count, then
// decoded to 16-bit little-endian PCM on ffmpeg's stdout.
type Decoder struct {
	// FFmpegPath defaults to "ffmpeg" on PATH.
	FFmpegPath string

	// FFprobePath defaults to the ffprobe next to FFmpegPath.
	FFprobePath string
}

func (d Decoder) ffmpeg() string {
	if d.FFmpegPath == "" {
		return DefaultFFmpeg
	}
	return d.FFmpegPath
}

func (d Decoder) ffprobe() string {
	if d.FFprobePath != "" {
		return d.FFprobePath
	}
	if dir := filepath.Dir(d.FFmpegPath); d.FFmpegPath != "" && dir != "." {
		return filepath.Join(dir, DefaultFFprobe)
	}
	return DefaultFFprobe
}

// Decode spools r to a temporary file, since probing and decoding each
// need to read the input from the start.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	tmp, err := os.CreateTemp("", "foxwav-ffmpeg-*")
	if err != nil {
		return nil, fmt.Errorf("creating spool file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("spooling input: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("spooling input: %w", err)
	}

	return d.DecodeFile(context.Background(), tmp.Name())
}

// DecodeFile decodes the file at path. The whole stream is read before
// DecodeFile returns.
func (d Decoder) DecodeFile(ctx context.Context, path string) (audio.Source, error) {
	rate, channels, err := d.probe(ctx, path)
	if err != nil {
		return nil, err
	}

	// #nosec G204 - ffmpeg path comes from configuration, args are built here
	cmd := exec.CommandContext(ctx, d.ffmpeg(),
		"-v", "error",
		"-nostdin",
		"-i", path,
		"-map", "0:a:0",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", strconv.Itoa(channels),
		"-ar", strconv.Itoa(rate),
		"pipe:1",
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s", ErrFFmpeg, err, strings.TrimSpace(stderr.String()))
	}

	return &source{sampleRate: rate, channels: channels, data: out}, nil
}

func (d Decoder) probe(ctx context.Context, path string) (rate, channels int, err error) {
	// #nosec G204 - ffprobe path comes from configuration, args are built here
	cmd := exec.CommandContext(ctx, d.ffprobe(),
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate,channels",
		"-of", "csv=p=0",
		path,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w: %s", ErrProbe, err, strings.TrimSpace(stderr.String()))
	}
	return parseProbe(string(out))
}

// parseProbe reads ffprobe's "sample_rate,channels" csv line.
func parseProbe(out string) (rate, channels int, err error) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, 0, ErrNoAudioStream
	}

	fields := strings.Split(strings.TrimSuffix(line, ","), ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: unexpected output %q", ErrProbe, line)
	}

	rate, err = strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || rate <= 0 {
		return 0, 0, fmt.Errorf("%w: bad sample rate %q", ErrProbe, fields[0])
	}
	channels, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || channels <= 0 {
		return 0, 0, fmt.Errorf("%w: bad channel count %q", ErrProbe, fields[1])
	}
	return rate, channels, nil
}

// source serves decoded s16le bytes.
type source struct {
	sampleRate int
	channels   int
	data       []byte
	pos        int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := min(len(dst), (len(s.data)-s.pos)/2)
	if n == 0 {
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.data[s.pos:]))) / 32768.0
		s.pos += 2
	}
	return n, nil
}
