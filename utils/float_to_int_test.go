// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat64ToUint8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  uint8
	}{
		{name: "silence", input: 0, want: 128},
		{name: "max positive", input: 1, want: 255},
		{name: "max negative", input: -1, want: 0},
		{name: "half positive", input: 0.5, want: 191},         // 191.25
		{name: "half negative", input: -0.5, want: 64},         // 63.75
		{name: "just below silence", input: -0.001, want: 127}, // 127.37
		{name: "clamp over max", input: 1.5, want: 255},
		{name: "clamp under min", input: -3, want: 0},
		{name: "positive infinity", input: math.Inf(1), want: 255},
		{name: "negative infinity", input: math.Inf(-1), want: 0},
		{name: "NaN is silence", input: math.NaN(), want: 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Float64ToUint8(tt.input); got != tt.want {
				t.Errorf("Float64ToUint8(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16384}, // 16383.5
		{name: "half negative", input: -0.5, want: -16384},
		{name: "quarter", input: 0.25, want: 8192}, // 8191.75
		{name: "small positive", input: 0.001, want: 33},
		{name: "small negative", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: math.MinInt16},
		{name: "NaN is silence", input: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Float64ToInt16(tt.input); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat64ToUint8_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float64ToUint8(-1)
	for i := 1; i <= 2000; i++ {
		x := -1 + float64(i)/1000
		got := Float64ToUint8(x)
		if got < prev {
			t.Fatalf("Float64ToUint8(%v) = %d, below previous %d", x, got, prev)
		}
		prev = got
	}
}

func BenchmarkFloat64ToUint8(b *testing.B) {
	for b.Loop() {
		_ = Float64ToUint8(0.5)
	}
}

func BenchmarkFloat64ToInt16(b *testing.B) {
	for b.Loop() {
		_ = Float64ToInt16(0.5)
	}
}
