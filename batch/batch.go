// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/foxwav"
)

// Extensions are the file types Find picks up, compared case-insensitively.
var Extensions = []string{"mp3", "wav", "m4a", "ogg", "flac", "aac", "wma"}

// FileConverter converts one file on disk. *foxwav.Converter implements it.
type FileConverter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string, s foxwav.Settings) (*foxwav.Report, error)
}

// Options configures Run.
type Options struct {
	InputDir  string
	OutputDir string

	// Workers bounds concurrent conversions. Zero or less uses GOMAXPROCS.
	Workers int

	Settings foxwav.Settings
	Logger   *slog.Logger
}

// Result is the outcome for a single input file.
type Result struct {
	Input  string
	Output string
	Report *foxwav.Report // nil when Err is set
	Err    error
}

// Summary aggregates a batch run. Results are in the order Find returned
// the inputs.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []Result
}

// Find lists the audio files directly inside dir, sorted by name.
// Subdirectories are not searched.
func Find(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isAudio(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

func isAudio(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return ext != "" && slices.Contains(Extensions, ext)
}

// OutputName returns the path of the WAV written for input: its base name
// with the extension replaced by .wav, inside outDir.
func OutputName(input, outDir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+".wav")
}

// Run converts every audio file in opts.InputDir into opts.OutputDir.
//
// A failing file is recorded in the summary and does not stop the others.
// Once ctx is canceled the files not yet started are marked failed with
// the context error. The returned error is non-nil only when the input
// directory cannot be listed or the output directory cannot be created.
func Run(ctx context.Context, conv FileConverter, opts Options) (*Summary, error) {
	if opts.InputDir == "" {
		return nil, ErrNoInputDir
	}
	if opts.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	files, err := Find(opts.InputDir)
	if err != nil {
		return nil, err
	}
	sum := &Summary{Total: len(files), Results: make([]Result, len(files))}
	if len(files) == 0 {
		return sum, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i, in := range files {
		out := OutputName(in, opts.OutputDir)
		g.Go(func() error {
			res := Result{Input: in, Output: out}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Report, res.Err = conv.ConvertFile(ctx, in, out, opts.Settings)
			}

			if res.Err != nil {
				log.Error("conversion failed", "input", in, "err", res.Err)
			} else {
				log.Info("converted", "input", in, "output", out, "bytes", res.Report.OutputSize)
			}

			// Each goroutine owns its own slot.
			sum.Results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range sum.Results {
		if r.Err != nil {
			sum.Failed++
		} else {
			sum.Succeeded++
		}
	}
	return sum, nil
}
