// Package quant implements BlurHash's signed square-root companding:
// AC coefficients in [-1,1] are quantised into 19 levels (0..18) to pack
// into two base-83 digits, and dequantised back on decode.
package quant

import "math"

// signPow returns sign(b)*|b|^e, with sign(0) = 0.
func signPow(b, e float64) float64 {
	if b == 0 {
		return 0
	}
	sign := 1.0
	if b < 0 {
		sign = -1.0
	}
	return sign * math.Pow(math.Abs(b), e)
}

// Quantize maps v in roughly [-1,1] to an integer in [0,18].
func Quantize(v float64) int {
	q := int(math.Floor(signPow(v, 0.5)*9 + 9.5))
	if q < 0 {
		return 0
	}
	if q > 18 {
		return 18
	}
	return q
}

// Dequantize maps q in [0,18] back to a float in [-1,1].
func Dequantize(q int) float64 {
	return signPow(float64(q-9)/9, 2)
}
