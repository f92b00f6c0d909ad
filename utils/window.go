// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Sinc is the normalized sinc function sin(pi*x) / (pi*x), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Blackman evaluates a Blackman window centred on zero.
// x is the position relative to the half-width, so the window is 1 at x=0
// and falls to 0 at x=±1. Outside [-1, 1] it returns 0.
func Blackman(x float64) float64 {
	if x <= -1 || x >= 1 {
		return 0
	}
	return 0.42 + 0.5*math.Cos(math.Pi*x) + 0.08*math.Cos(2*math.Pi*x)
}

// DBToAmplitude converts a level in dB relative to full scale to a linear
// amplitude, so 0 dB is 1.0 and -6 dB is about 0.5.
func DBToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}
