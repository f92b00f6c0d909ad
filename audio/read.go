// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	readChunk = 4096

	// Matches bufio's tolerance for readers that return no data and no error.
	maxEmptyReads = 100
)

// ReadAll drains src into a Buffer and closes it.
//
// The source is read in chunks of whole frames and de-interleaved into one
// slice per channel. A source reporting zero channels fails with
// ErrNoChannels and a source that yields no frames fails with
// ErrEmptyBuffer.
func ReadAll(src Source) (buf *Buffer, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			buf = nil
			err = fmt.Errorf("close source: %w", cerr)
		}
	}()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	data := make([][]float64, channels)
	chunk := make([]float32, readChunk*channels)

	// Samples left over when a read ends mid-frame.
	var pending []float32
	empty := 0

	for {
		n, rerr := src.ReadSamples(chunk)
		if n > 0 {
			samples := chunk[:n]
			if len(pending) > 0 {
				samples = append(pending, samples...)
				pending = nil
			}

			frames := len(samples) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					data[c] = append(data[c], float64(samples[base+c]))
				}
			}

			if rest := samples[frames*channels:]; len(rest) > 0 {
				pending = append([]float32(nil), rest...)
			}
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("read samples: %w", rerr)
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return nil, fmt.Errorf("read samples: %w", io.ErrNoProgress)
		}
	}

	buf, err = NewBuffer(src.SampleRate(), data)
	if err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, ErrEmptyBuffer
	}
	return buf, nil
}
