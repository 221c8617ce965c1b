// Package dct implements the 2D cosine-basis projection and reconstruction
// at the heart of BlurHash: the encode-side forward projection of a linear
// pixel grid onto an X×Y component grid, and the decode-side reconstruction
// of a pixel grid from those components.
//
// This is grounded on the teacher's compression/dwa.go 8×8 DCT
// (dctForward8x8 / dctInverse8x8): both are separable cosine transforms
// computed as nested row/column loops. The teacher's transform is fixed at
// 8×8 with a baked orthonormal coefficient table; BlurHash's grid varies
// from 1×1 to 9×9 and uses a different normalisation (norm 1 for DC, norm 2
// for AC, pre-absorbing the inverse-transform weight — see Reconstruct),
// so the coefficient table is computed per call rather than baked in at
// init time.
package dct

import "math"

// Component is one DCT coefficient in linear space.
type Component struct {
	R, G, B float64
}

// Plane is a flat, row-major linear-light pixel grid: Pix[y*W+x] is the
// pixel at column x, row y.
type Plane struct {
	W, H int
	Pix  []Component
}

// Forward projects a linear pixel Plane onto an X×Y grid of components, per
// spec §4.4. The result is in row-major (y-major) order: components[y*X+x].
//
// When X*Y is large enough to be worth the goroutine overhead (see
// internal/dct.parallelFor), components are computed concurrently; each
// goroutine owns a disjoint subset of (x,y) component indices and
// accumulates into its own local state, so no synchronization is needed
// beyond the final join.
func Forward(src *Plane, x, y int) []Component {
	n := x * y
	out := make([]Component, n)

	piW := math.Pi / float64(src.W)
	piH := math.Pi / float64(src.H)
	scale := 1.0 / float64(src.W*src.H)

	parallelFor(n, func(idx int) {
		cx := idx % x
		cy := idx / x

		norm := 2.0
		if cx == 0 && cy == 0 {
			norm = 1.0
		}

		var cr, cg, cb float64
		for j := 0; j < src.H; j++ {
			cosJ := math.Cos(piH * float64(j) * float64(cy))
			rowBase := j * src.W
			for i := 0; i < src.W; i++ {
				basis := norm * cosJ * math.Cos(piW*float64(i)*float64(cx))
				p := src.Pix[rowBase+i]
				cr += basis * p.R
				cg += basis * p.G
				cb += basis * p.B
			}
		}
		out[idx] = Component{R: cr * scale, G: cg * scale, B: cb * scale}
	})

	return out
}

// Reconstruct evaluates the inverse transform at every pixel of an
// outW×outH grid, per spec §4.4. No extra normalisation factor is applied
// here: the norm-1/norm-2 split baked into Forward's output already
// absorbs the standard inverse-transform weight.
func Reconstruct(components []Component, x, y, outW, outH int) *Plane {
	out := &Plane{W: outW, H: outH, Pix: make([]Component, outW*outH)}

	for py := 0; py < outH; py++ {
		for px := 0; px < outW; px++ {
			var r, g, b float64
			for cy := 0; cy < y; cy++ {
				cosPy := math.Cos(math.Pi * float64(py) * float64(cy) / float64(outH))
				for cx := 0; cx < x; cx++ {
					basis := math.Cos(math.Pi*float64(px)*float64(cx)/float64(outW)) * cosPy
					c := components[cy*x+cx]
					r += c.R * basis
					g += c.G * basis
					b += c.B * basis
				}
			}
			out.Pix[py*outW+px] = Component{R: r, G: g, B: b}
		}
	}

	return out
}
