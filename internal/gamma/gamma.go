// Package gamma converts between 8-bit sRGB byte values and linear-light
// floats, per IEC 61966-2-1. A lookup table handles the sRGB->linear
// direction since it's keyed by a byte; linear->sRGB runs the curve
// directly, the same split the teacher uses for its DWA linear/nonlinear
// half-float tables (compression/dwa.go's dwaToLinearTable).
package gamma

import (
	"math"
	"sync"
)

var (
	tableOnce   sync.Once
	toLinear256 [256]float64
)

func buildTable() {
	for i := range toLinear256 {
		toLinear256[i] = srgbToLinear(float64(i) / 255)
	}
}

func ensureTable() {
	tableOnce.Do(buildTable)
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ToLinear converts an 8-bit sRGB channel value to linear-light intensity
// in [0,1].
func ToLinear(b uint8) float64 {
	ensureTable()
	return toLinear256[b]
}

// ToSRGB converts a linear-light intensity to an 8-bit sRGB channel value,
// clamping the input to [0,1] and the rounded result to [0,255].
func ToSRGB(l float64) uint8 {
	if l <= 0 {
		l = 0
	} else if l > 1 {
		l = 1
	}

	var v float64
	if l <= 0.0031308 {
		v = l*12.92*255 + 0.5
	} else {
		v = (1.055*math.Pow(l, 1/2.4)-0.055)*255 + 0.5
	}

	rounded := math.Floor(v)
	if rounded < 0 {
		return 0
	}
	if rounded > 255 {
		return 255
	}
	return uint8(rounded)
}
