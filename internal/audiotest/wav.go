// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// PCMWAV builds an integer PCM WAV file in memory. samples are interleaved
// raw values: unsigned for 8 bits, signed otherwise.
func PCMWAV(sampleRate, channels, bitsPerSample int, samples []int) []byte {
	width := bitsPerSample / 8
	blockAlign := channels * width
	dataSize := len(samples) * width

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize+dataSize&1))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	tmp := make([]byte, 4)
	for _, s := range samples {
		binary.LittleEndian.PutUint32(tmp, uint32(int32(s)))
		buf.Write(tmp[:width])
	}
	if dataSize&1 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// WAV16 builds a 16-bit PCM WAV from per-channel float samples in [-1, 1].
func WAV16(sampleRate int, data [][]float64) []byte {
	if len(data) == 0 {
		return PCMWAV(sampleRate, 1, 16, nil)
	}

	frames := len(data[0])
	samples := make([]int, 0, frames*len(data))
	for f := range frames {
		for c := range data {
			v := math.Round(data[c][f] * math.MaxInt16)
			samples = append(samples, int(max(math.MinInt16, min(math.MaxInt16, v))))
		}
	}
	return PCMWAV(sampleRate, len(data), 16, samples)
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	return path
}
