// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Sine returns n samples of a sine wave at freq Hz with the given peak
// amplitude.
func Sine(sampleRate, n int, freq, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Channels returns count copies of samples, one per channel.
func Channels(count int, samples []float64) [][]float64 {
	out := make([][]float64, count)
	for c := range out {
		out[c] = append([]float64(nil), samples...)
	}
	return out
}

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, s := range x {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(x)))
}

// ToneAmplitude estimates the peak amplitude of the freq Hz component of x
// using the Goertzel algorithm.
func ToneAmplitude(x []float64, sampleRate int, freq float64) float64 {
	if len(x) == 0 {
		return 0
	}

	w := 2 * math.Pi * freq / float64(sampleRate)
	coeff := 2 * math.Cos(w)

	var s1, s2 float64
	for _, v := range x {
		s0 := v + coeff*s1 - s2
		s2, s1 = s1, s0
	}

	power := s1*s1 + s2*s2 - coeff*s1*s2
	if power < 0 {
		power = 0
	}
	return 2 * math.Sqrt(power) / float64(len(x))
}
