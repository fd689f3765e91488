// SPDX-License-Identifier: EPL-2.0

package utils

// FloatS16ToInt16 converts a float sample carried in the int16 value
// range to int16. Values are rounded half away from zero and saturate
// at the int16 bounds.
func FloatS16ToInt16(v float32) int16 {
	const (
		maxRound = 32767 - 0.5
		minRound = -32768 + 0.5
	)

	if v > 0 {
		if v >= maxRound {
			return 32767
		}
		return int16(v + 0.5)
	}
	if v <= minRound {
		return -32768
	}
	return int16(v - 0.5)
}

// FloatS16BufToInt16 converts src into dst, which must be at least as
// long as src, using FloatS16ToInt16 per value.
func FloatS16BufToInt16(src []float32, dst []int16) {
	for i, v := range src {
		dst[i] = FloatS16ToInt16(v)
	}
}

// Int16BufToFloatS16 widens src into dst losslessly. No scaling is
// applied; every int16 value is exactly representable as float32.
func Int16BufToFloatS16(src []int16, dst []float32) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}
