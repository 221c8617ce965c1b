// Package blurhash implements the BlurHash image placeholder codec: a
// compact base-83 string encoding of an image's dominant color and a
// handful of cosine-basis coefficients (Wolt Enterprises, 2018), extended
// with an optional "<W:H>" aspect prefix and automatic component-count
// inference.
//
// The package is purely functional: Encode and Decode are pure
// transformations of their arguments with no shared mutable state, no I/O,
// and no caching, so concurrent calls on disjoint inputs never need to
// coordinate.
package blurhash

import (
	"fmt"
	"image"

	"github.com/mrjoshuak/go-blurhash/internal/dct"
	"github.com/mrjoshuak/go-blurhash/internal/gamma"
)

// RatioKind tags how Encode should choose component counts, replacing the
// source's AUTO/INFER sentinel values with an explicit tagged choice (spec
// §9 design note).
type RatioKind int

const (
	// RatioDefault falls back to the fixed (4, 4) component grid.
	RatioDefault RatioKind = iota
	// RatioInfer derives (X, Y) from the source's aspect ratio (spec §4.6).
	RatioInfer
	// RatioExplicit uses the caller-supplied X, Y directly.
	RatioExplicit
)

// Ratio selects the component-count strategy for Encode.
type Ratio struct {
	Kind RatioKind
	X, Y int
}

// DefaultRatio requests the fixed 4x4 component grid.
func DefaultRatio() Ratio { return Ratio{Kind: RatioDefault} }

// InferRatio requests component counts derived from the source's aspect
// ratio.
func InferRatio() Ratio { return Ratio{Kind: RatioInfer} }

// ExplicitRatio requests an exact (X, Y) component grid. Both must be in
// 1..=9.
func ExplicitRatio(x, y int) Ratio { return Ratio{Kind: RatioExplicit, X: x, Y: y} }

func (r Ratio) resolve(w, h int) (x, y int, err error) {
	switch r.Kind {
	case RatioExplicit:
		x, y = r.X, r.Y
	case RatioInfer:
		x, y = componentsForAspect(w, h)
	default:
		x, y = 4, 4
	}
	if x < 1 || x > 9 || y < 1 || y > 9 {
		return 0, 0, fmt.Errorf("%w: (%d, %d)", ErrComponentsOutOfRange, x, y)
	}
	return x, y, nil
}

// minSamplerResolution and maxSamplerResolution bound the Sampler
// collaborator's resolution parameter per spec §6.
const (
	minSamplerResolution = 4
	maxSamplerResolution = 128
)

// ClampResolution clamps N to [4, 128], the valid range for the pixel
// sampler collaborator (spec §6). The second return value is false when
// clamping changed the input, mirroring the spec's non-fatal
// ResolutionOutOfRange condition; callers that can log (such as a Sampler
// implementation or the CLI) should surface a warning when it is false. The
// core codec itself never logs.
func ClampResolution(n int) (clamped int, inRange bool) {
	if n < minSamplerResolution {
		return minSamplerResolution, false
	}
	if n > maxSamplerResolution {
		return maxSamplerResolution, false
	}
	return n, true
}

// Encode produces a BlurHash string from a pre-sampled PixelMap.
func Encode(pm *PixelMap, ratio Ratio, prefixSize bool) (string, error) {
	if err := validateMap(pm); err != nil {
		return "", err
	}
	x, y, err := ratio.resolve(pm.Width, pm.Height)
	if err != nil {
		return "", err
	}

	plane := toLinearPlane(pm)
	comps := dct.Forward(plane, x, y)
	return assembleHash(comps, x, y, pm.Width, pm.Height, prefixSize)
}

// EncodeLinear produces a BlurHash string from a pre-linearised LinearMap.
// This is the codec's equivalent of the spec's source_is_linear=true path:
// the type itself carries the "already linear" guarantee, so there is no
// separate flag to get wrong (spec §9 design note on sentinel
// configuration values).
func EncodeLinear(lm *LinearMap, ratio Ratio, prefixSize bool) (string, error) {
	if lm == nil || lm.Width <= 0 || lm.Height <= 0 || len(lm.Pix) != lm.Width*lm.Height {
		return "", fmt.Errorf("%w: linear map has invalid shape", ErrInvalidLinearInput)
	}
	x, y, err := ratio.resolve(lm.Width, lm.Height)
	if err != nil {
		return "", err
	}

	plane := &dct.Plane{W: lm.Width, H: lm.Height, Pix: make([]dct.Component, len(lm.Pix))}
	for i, p := range lm.Pix {
		plane.Pix[i] = dct.Component{R: p.R, G: p.G, B: p.B}
	}

	comps := dct.Forward(plane, x, y)
	return assembleHash(comps, x, y, lm.Width, lm.Height, prefixSize)
}

// EncodeImage samples img down to resolution via sampler and encodes the
// result. resolution is clamped to [4, 128] before being passed to the
// sampler.
func EncodeImage(img image.Image, sampler Sampler, resolution int, ratio Ratio, prefixSize bool) (string, error) {
	clamped, _ := ClampResolution(resolution)
	pm, err := sampler.Sample(img, clamped)
	if err != nil {
		return "", err
	}
	return Encode(pm, ratio, prefixSize)
}

// Decode reconstructs an approximate PixelMap from a BlurHash string.
//
// width and height select the output resolution; 0 means "not supplied",
// in which case they are derived from the hash's optional "<W:H>" prefix
// per spec §4.5 step 1. If only one of width/height is supplied, the other
// is derived from the prefix's aspect ratio. punch is a contrast multiplier
// applied to AC components; 1.0 reproduces the encoded contrast exactly.
func Decode(hash string, width, height int, punch float64) (*PixelMap, error) {
	prefixW, prefixH, body, hasPrefix, err := splitPrefix(hash)
	if err != nil {
		return nil, err
	}

	switch {
	case width == 0 && height == 0:
		if !hasPrefix {
			return nil, fmt.Errorf("%w: no size prefix and no explicit width/height", ErrInvalidDimensions)
		}
		width, height = prefixW, prefixH
	case width != 0 && height == 0:
		if hasPrefix {
			height = roundDiv(width*prefixH, prefixW)
		} else {
			height = width
		}
	case height != 0 && width == 0:
		if hasPrefix {
			width = roundDiv(height*prefixW, prefixH)
		} else {
			width = height
		}
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: derived dimensions (%d, %d)", ErrInvalidDimensions, width, height)
	}

	d, err := parseHash(body, punch)
	if err != nil {
		return nil, err
	}

	recon := dct.Reconstruct(d.components, d.x, d.y, width, height)
	return fromLinearPlane(recon), nil
}

// DecodeToPixels is a convenience pass-through: if input is already a
// *PixelMap it is returned unchanged; if it is a hash string it is decoded
// at resolution (clamped to [4, 128]), using the hash's size prefix when
// present to preserve aspect, or a square grid of resolution x resolution
// otherwise.
func DecodeToPixels(input any, resolution int) (*PixelMap, error) {
	switch v := input.(type) {
	case *PixelMap:
		return v, nil
	case string:
		clamped, _ := ClampResolution(resolution)
		prefixW, prefixH, _, hasPrefix, err := splitPrefix(v)
		if err != nil {
			return nil, err
		}
		if !hasPrefix {
			return Decode(v, clamped, clamped, 1.0)
		}
		width, height := clamped, clamped
		if prefixW >= prefixH {
			height = roundDiv(clamped*prefixH, prefixW)
		} else {
			width = roundDiv(clamped*prefixW, prefixH)
		}
		return Decode(v, width, height, 1.0)
	default:
		return nil, fmt.Errorf("%w: unsupported input type %T", ErrInvalidDimensions, input)
	}
}

func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}

func validateMap(pm *PixelMap) error {
	if pm == nil || pm.Width <= 0 || pm.Height <= 0 {
		return fmt.Errorf("%w: zero-sized pixel map", ErrInvalidDimensions)
	}
	if len(pm.Pix) != pm.Width*pm.Height {
		return fmt.Errorf("%w: pixel count %d does not match %dx%d", ErrInvalidDimensions, len(pm.Pix), pm.Width, pm.Height)
	}
	return nil
}

func toLinearPlane(pm *PixelMap) *dct.Plane {
	plane := &dct.Plane{W: pm.Width, H: pm.Height, Pix: make([]dct.Component, len(pm.Pix))}
	for i, p := range pm.Pix {
		plane.Pix[i] = dct.Component{
			R: gamma.ToLinear(p.R),
			G: gamma.ToLinear(p.G),
			B: gamma.ToLinear(p.B),
		}
	}
	return plane
}

func fromLinearPlane(plane *dct.Plane) *PixelMap {
	pm := NewPixelMap(plane.W, plane.H)
	for i, c := range plane.Pix {
		pm.Pix[i] = RGB{
			R: gamma.ToSRGB(c.R),
			G: gamma.ToSRGB(c.G),
			B: gamma.ToSRGB(c.B),
		}
	}
	return pm
}
