// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToUint8 maps x in [-1, 1] to unsigned offset-binary 8-bit PCM.
// The mapping is round((x+1) * 127.5) with halves rounded away from zero,
// so silence lands on 128, -1 on 0 and +1 on 255. Out of range input is
// clamped and NaN is treated as silence.
func Float64ToUint8(x float64) uint8 {
	if math.IsNaN(x) {
		x = 0
	}

	v := math.Round((x + 1) * 127.5)
	if v > math.MaxUint8 {
		return math.MaxUint8
	} else if v < 0 {
		return 0
	}
	return uint8(v)
}

// Float64ToInt16 maps x in [-1, 1] to signed 16-bit PCM as round(x * 32767),
// halves rounded away from zero, clamped to [-32768, 32767]. NaN is treated
// as silence.
func Float64ToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * math.MaxInt16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
