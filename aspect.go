package blurhash

import "math"

// Reduce returns (w/gcd, h/gcd) for gcd = the standard Euclidean GCD of w
// and h, with the convention gcd(n, 0) = n (spec §4.6). This is the Aspect
// helper's coprime-reduction responsibility, independent of orientation
// classification and component-count inference.
func Reduce(w, h int) (int, int) {
	g := gcd(w, h)
	if g == 0 {
		return w, h
	}
	return w / g, h / g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// classifyOrientation returns the Orientation of a W×H rectangle.
func classifyOrientation(w, h int) Orientation {
	switch {
	case w > h:
		return Landscape
	case w < h:
		return Portrait
	default:
		return Square
	}
}

// round3 rounds to 3 decimal places, matching the precision the source's
// getFloat formatting applies to the aspect ratio before it feeds the
// component-count heuristic (spec §9 design note on implicit numeric
// formatting): the rounding is preserved here because it is
// precision-affecting, not a hot-path convenience.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// componentsForAspect infers (X, Y) from a W×H map per spec §4.6. The
// "+1 after rounding, then clamp to [1,9]" formula is preserved verbatim
// (spec §9 Open Question) to stay compatible with existing hashes, even
// though a simpler aspect heuristic would also satisfy the surrounding
// invariants.
func componentsForAspect(w, h int) (x, y int) {
	orientation := classifyOrientation(w, h)

	short, long := w, h
	if short > long {
		short, long = long, short
	}

	var ratio float64
	if orientation == Portrait {
		ratio = round3(float64(short) / float64(long))
	} else {
		ratio = round3(float64(long) / float64(short))
	}

	xc := clampComponent(int(math.Round(4*ratio)) + 1)
	yc := clampComponent(int(math.Round(4/ratio)) + 1)

	if orientation == Landscape {
		return xc, yc
	}
	return yc, xc
}

func clampComponent(v int) int {
	if v < 1 {
		return 1
	}
	if v > 9 {
		return 9
	}
	return v
}
