// SPDX-License-Identifier: EPL-2.0

// Command foxwav converts audio files into small mono WAV files for
// microcontroller playback.
//
//	foxwav [options] <input> [output]
//	foxwav [options] -batch [input_dir] [output_dir]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ik5/foxwav"
	"github.com/ik5/foxwav/batch"
	"github.com/ik5/foxwav/internal/config"
)

const (
	defaultOutput   = "foxmessage.wav"
	defaultInputDir = "."
)

const rule = "=================================================="

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath  string
	batch       bool
	sampleRate  int
	bitDepth    int
	maxDuration float64 // seconds
	headroom    float64
	workers     int
	ffmpegPath  string
	logLevel    string

	args []string
	set  map[string]bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}
	def := config.Default()

	fs := flag.NewFlagSet("foxwav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	fs.StringVar(&o.configPath, "config", "", "path to a YAML configuration file")
	fs.BoolVar(&o.batch, "batch", false, "convert every audio file in a folder")
	fs.IntVar(&o.sampleRate, "sample-rate", def.Conversion.SampleRate, "output sample rate in Hz")
	fs.IntVar(&o.sampleRate, "s", def.Conversion.SampleRate, "shorthand for -sample-rate")
	fs.IntVar(&o.bitDepth, "bit-depth", def.Conversion.BitDepth, "output bit depth, 8 or 16")
	fs.IntVar(&o.bitDepth, "b", def.Conversion.BitDepth, "shorthand for -bit-depth")
	fs.Float64Var(&o.maxDuration, "max-duration", float64(def.Conversion.MaxDurationMs)/1000, "maximum output length in seconds")
	fs.Float64Var(&o.maxDuration, "d", float64(def.Conversion.MaxDurationMs)/1000, "shorthand for -max-duration")
	fs.Float64Var(&o.headroom, "headroom", def.Conversion.HeadroomDB, "peak level in dB below full scale")
	fs.IntVar(&o.workers, "workers", def.Batch.Workers, "concurrent conversions in batch mode, 0 for one per CPU")
	fs.StringVar(&o.ffmpegPath, "ffmpeg", def.FFmpegPath, "ffmpeg binary used for m4a, aac and wma")
	fs.StringVar(&o.logLevel, "log-level", string(def.LogLevel), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	o.args = fs.Args()

	if len(o.args) > 2 {
		return nil, fmt.Errorf("too many arguments: %s", strings.Join(o.args[2:], " "))
	}
	if !o.batch && len(o.args) == 0 {
		return nil, errors.New("no input file specified")
	}
	return o, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "foxwav - convert audio into small mono WAV files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  foxwav [options] <input> [output]          (default output %s)\n", defaultOutput)
	fmt.Fprintln(w, "  foxwav [options] -batch [input_dir] [output_dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  foxwav greeting.mp3")
	fmt.Fprintln(w, "  foxwav -s 16000 -b 16 -d 3 greeting.m4a hello.wav")
	fmt.Fprintln(w, "  foxwav -batch ./audio_files ./converted")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig(o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	if o.set["sample-rate"] || o.set["s"] {
		cfg.Conversion.SampleRate = o.sampleRate
	}
	if o.set["bit-depth"] || o.set["b"] {
		cfg.Conversion.BitDepth = o.bitDepth
	}
	if o.set["max-duration"] || o.set["d"] {
		cfg.Conversion.MaxDurationMs = int(math.Round(o.maxDuration * 1000))
	}
	if o.set["headroom"] {
		cfg.Conversion.HeadroomDB = o.headroom
	}
	if o.set["workers"] {
		cfg.Batch.Workers = o.workers
	}
	if o.set["ffmpeg"] {
		cfg.FFmpegPath = o.ffmpegPath
	}
	if o.set["log-level"] {
		cfg.LogLevel = config.LogLevel(o.logLevel)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n\n", err)
		fmt.Fprintln(stderr, "Run foxwav -h for usage.")
		return 1
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Level()}))
	conv := foxwav.NewConverter(
		foxwav.WithRegistry(foxwav.NewDefaultRegistry(cfg.FFmpegPath)),
		foxwav.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if o.batch {
		return runBatch(ctx, conv, cfg, o.args, logger, stdout, stderr)
	}
	return runSingle(ctx, conv, cfg, o.args, stdout, stderr)
}

func runSingle(ctx context.Context, conv *foxwav.Converter, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	input, output := args[0], defaultOutput
	if len(args) > 1 {
		output = args[1]
	}

	fmt.Fprintf(stdout, "Loading: %s\n", input)
	rep, err := conv.ConvertFile(ctx, input, output, cfg.Settings())
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	printReport(stdout, rep)
	return 0
}

func runBatch(ctx context.Context, conv *foxwav.Converter, cfg *config.Config, args []string, logger *slog.Logger, stdout, stderr io.Writer) int {
	inDir, outDir := defaultInputDir, cfg.Batch.OutputDir
	if len(args) > 0 {
		inDir = args[0]
	}
	if len(args) > 1 {
		outDir = args[1]
	}

	sum, err := batch.Run(ctx, conv, batch.Options{
		InputDir:  inDir,
		OutputDir: outDir,
		Workers:   cfg.Batch.Workers,
		Settings:  cfg.Settings(),
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	if sum.Total == 0 {
		fmt.Fprintf(stdout, "No audio files found in %s\n", inDir)
		return 0
	}

	fmt.Fprintf(stdout, "Found %d audio file(s)\n", sum.Total)
	fmt.Fprintln(stdout, rule)
	for _, r := range sum.Results {
		if r.Err != nil {
			fmt.Fprintf(stdout, "FAILED  %s: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(stdout, "OK      %s -> %s (%s bytes, %.2fs)\n",
			r.Input, r.Output, groupDigits(r.Report.OutputSize), r.Report.DurationSeconds())
	}
	fmt.Fprintln(stdout, rule)
	fmt.Fprintf(stdout, "Batch conversion complete: %d/%d successful\n", sum.Succeeded, sum.Total)
	fmt.Fprintln(stdout, rule)
	return 0
}

func printReport(w io.Writer, rep *foxwav.Report) {
	channels := "Mono"
	if rep.Channels != 1 {
		channels = strconv.Itoa(rep.Channels)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CONVERSION SUCCESSFUL!")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Output file: %s\n", rep.OutputPath)
	fmt.Fprintf(w, "File size: %s bytes (%.1f KB)\n", groupDigits(rep.OutputSize), float64(rep.OutputSize)/1024)
	fmt.Fprintf(w, "Duration: %.2f seconds\n", rep.DurationSeconds())
	fmt.Fprintf(w, "Sample rate: %d Hz\n", rep.SampleRate)
	fmt.Fprintf(w, "Bit depth: %s\n", rep.BitDepth)
	fmt.Fprintf(w, "Channels: %s\n", channels)
	fmt.Fprintln(w, rule)
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
