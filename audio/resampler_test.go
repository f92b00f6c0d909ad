// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/foxwav/internal/audiotest"
)

// interior drops the filter's edge region, where a tone meets the held
// edge samples.
func interior(x []float64) []float64 {
	const edge = 128
	if len(x) <= 2*edge {
		return x
	}
	return x[edge : len(x)-edge]
}

func TestResample_SameRate(t *testing.T) {
	t.Parallel()

	in := mustBuffer(t, 22050, []float64{0.1, 0.2, 0.3})

	out, err := Resample(in, 22050)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if out != in {
		t.Error("Resample() at the same rate did not return the input buffer")
	}
}

func TestResampledLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, src, dst int
		want        int
	}{
		{44100, 44100, 22050, 22050},
		{88200, 44100, 22050, 44100},
		{3, 44100, 22050, 2}, // 1.5 rounds up
		{1, 48000, 22050, 0},
		{100, 8000, 22050, 276},
		{128000, 16000, 22050, 176400},
		{0, 44100, 22050, 0},
		{1, 8000, 16000, 2},
	}

	for _, tt := range tests {
		if got := ResampledLength(tt.n, tt.src, tt.dst); got != tt.want {
			t.Errorf("ResampledLength(%d, %d, %d) = %d, want %d", tt.n, tt.src, tt.dst, got, tt.want)
		}
	}
}

func TestResample_Length(t *testing.T) {
	t.Parallel()

	in := mustBuffer(t, 44100, make([]float64, 1001))
	out, err := Resample(in, 22050)
	if err != nil {
		t.Fatal(err)
	}
	if out.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", out.SampleRate)
	}
	if out.Len() != 501 {
		t.Errorf("Len() = %d, want 501", out.Len())
	}
}

func TestResample_InvalidRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{"zero target", 44100, 0},
		{"negative target", 44100, -22050},
		{"zero source", 0, 22050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := &Buffer{SampleRate: tt.srcRate, Data: [][]float64{{0, 1}}}
			if _, err := Resample(in, tt.dstRate); !errors.Is(err, ErrInvalidSampleRate) {
				t.Errorf("Resample() error = %v, want ErrInvalidSampleRate", err)
			}
		})
	}
}

func TestResample_TonePreserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		freq    float64
	}{
		{"44100 to 22050", 44100, 22050, 440},
		{"48000 to 22050", 48000, 22050, 1000},
		{"16000 to 22050", 16000, 22050, 1000},
		{"8000 to 22050", 8000, 22050, 300},
		{"22050 to 8000", 22050, 8000, 2500},
	}

	const amplitude = 0.8

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := mustBuffer(t, tt.srcRate, audiotest.Sine(tt.srcRate, tt.srcRate/2, tt.freq, amplitude))
			out, err := Resample(in, tt.dstRate)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}

			body := interior(out.Data[0])

			got := audiotest.ToneAmplitude(body, tt.dstRate, tt.freq)
			if math.Abs(got-amplitude) > 0.02 {
				t.Errorf("tone amplitude = %.4f, want %.2f", got, amplitude)
			}

			rms := audiotest.RMS(body)
			if want := amplitude / math.Sqrt2; math.Abs(rms-want)/want > 0.02 {
				t.Errorf("RMS = %.4f, want %.4f within 2%%", rms, want)
			}
		})
	}
}

func TestResample_RemovesContentAboveNyquist(t *testing.T) {
	t.Parallel()

	// 15 kHz cannot be represented at 22050 Hz and must be filtered out
	// instead of folding back to 7050 Hz.
	in := mustBuffer(t, 44100, audiotest.Sine(44100, 44100, 15000, 1))
	out, err := Resample(in, 22050)
	if err != nil {
		t.Fatal(err)
	}

	body := interior(out.Data[0])
	if rms := audiotest.RMS(body); rms > 0.01 {
		t.Errorf("RMS after downsampling a 15 kHz tone = %.4f, want < 0.01", rms)
	}
	if alias := audiotest.ToneAmplitude(body, 22050, 7050); alias > 0.01 {
		t.Errorf("alias at 7050 Hz amplitude = %.4f, want < 0.01", alias)
	}
}

func TestResample_DCGain(t *testing.T) {
	t.Parallel()

	for _, dst := range []int{8000, 11025, 22050, 32000, 96000} {
		in := mustBuffer(t, 44100, audiotest.Constant(4410, 0.5))
		out, err := Resample(in, dst)
		if err != nil {
			t.Fatal(err)
		}

		for i, s := range interior(out.Data[0]) {
			if math.Abs(s-0.5) > 1e-3 {
				t.Fatalf("44100->%d: interior sample %d = %v, want 0.5", dst, i, s)
			}
		}
	}
}

func TestResample_ConstantEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src, dst int
	}{
		{11025, 22050},
		{11025, 8000},
		{44100, 22050},
		{16000, 22050},
		{48000, 11025},
	}

	for _, tt := range tests {
		in := mustBuffer(t, tt.src, audiotest.Constant(tt.src/2, 0.25))
		out, err := Resample(in, tt.dst)
		if err != nil {
			t.Fatal(err)
		}

		ch := out.Data[0]
		first, last := ch[0], ch[len(ch)-1]
		if math.Abs(first-0.25) > 1e-3 || math.Abs(last-0.25) > 1e-3 {
			t.Errorf("%d->%d: first, last = %v, %v, want 0.25", tt.src, tt.dst, first, last)
		}
		if peak := out.Peak(); math.Abs(peak-0.25) > 1e-3 {
			t.Errorf("%d->%d: Peak() = %v, want 0.25 without ringing", tt.src, tt.dst, peak)
		}
	}
}

func TestResample_Multichannel(t *testing.T) {
	t.Parallel()

	in := mustBuffer(t, 44100, audiotest.Constant(441, 0.5), audiotest.Constant(441, -0.25))
	out, err := Resample(in, 22050)
	if err != nil {
		t.Fatal(err)
	}

	if out.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", out.Channels())
	}
	mid := out.Len() / 2
	if math.Abs(out.Data[0][mid]-0.5) > 1e-3 || math.Abs(out.Data[1][mid]+0.25) > 1e-3 {
		t.Errorf("mid samples = (%v, %v), want (0.5, -0.25)", out.Data[0][mid], out.Data[1][mid])
	}
}

func TestResample_VeryShort(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 5} {
		in := &Buffer{SampleRate: 8000, Data: [][]float64{audiotest.Constant(n, 0.5)}}
		out, err := Resample(in, 22050)
		if err != nil {
			t.Fatalf("Resample(%d samples) error = %v", n, err)
		}
		if want := ResampledLength(n, 8000, 22050); out.Len() != want {
			t.Errorf("Resample(%d samples) Len() = %d, want %d", n, out.Len(), want)
		}
		for _, s := range out.Data[0] {
			if math.IsNaN(s) || math.Abs(s) > 1 {
				t.Errorf("Resample(%d samples) produced %v", n, s)
			}
		}
	}
}

func TestResample_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	samples := audiotest.Sine(44100, 1000, 440, 1)
	orig := append([]float64(nil), samples...)

	if _, err := Resample(mustBuffer(t, 44100, samples), 22050); err != nil {
		t.Fatal(err)
	}
	for i := range samples {
		if samples[i] != orig[i] {
			t.Fatalf("sample %d changed from %v to %v", i, orig[i], samples[i])
		}
	}
}

func BenchmarkResample_Downsample(b *testing.B) {
	in := mustBuffer(b, 44100, audiotest.Sine(44100, 44100, 440, 1))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Resample(in, 22050)
	}
}

func BenchmarkResample_Upsample(b *testing.B) {
	in := mustBuffer(b, 16000, audiotest.Sine(16000, 16000, 440, 1))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Resample(in, 22050)
	}
}
