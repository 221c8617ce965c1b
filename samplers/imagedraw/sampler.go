// Package imagedraw provides a reference implementation of the blurhash
// Sampler collaborator (spec §6, §4.9) backed by golang.org/x/image/draw.
// It resamples an already-decoded image.Image down to a target resolution,
// preserving aspect ratio so the shorter edge lands exactly on the
// requested resolution — the same resize-then-transform shape used by the
// PDQ perceptual hasher in this corpus (pdqhasher.go) and by
// deepteams/webp's cmd/gwebp tool for output scaling.
//
// This package intentionally never decodes an image format from bytes:
// BlurHash's scope explicitly excludes image decoding from on-disk formats
// (spec §1). Callers are expected to have already produced an image.Image
// by whatever means suits them.
package imagedraw

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"

	"github.com/mrjoshuak/go-blurhash"
)

// Sampler resamples image.Image values into blurhash.PixelMap values using
// an x/image/draw scaler.
type Sampler struct {
	// Scaler selects the resampling kernel. Defaults to draw.BiLinear,
	// a reasonable quality/speed tradeoff for a placeholder codec that
	// only ever keeps a handful of low frequencies anyway.
	Scaler draw.Scaler

	// Logger receives a warning when the requested resolution falls
	// outside [4, 128] and gets clamped (spec §6's non-fatal
	// ResolutionOutOfRange condition). A nil Logger disables the warning.
	Logger *slog.Logger
}

// New returns a Sampler with the default bilinear scaler.
func New() *Sampler {
	return &Sampler{Scaler: draw.BiLinear}
}

// Sample implements blurhash.Sampler.
func (s *Sampler) Sample(img image.Image, resolution int) (*blurhash.PixelMap, error) {
	if img == nil {
		return nil, fmt.Errorf("imagedraw: nil image: %w", blurhash.ErrInvalidDimensions)
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("imagedraw: source image has zero extent: %w", blurhash.ErrInvalidDimensions)
	}

	clamped, inRange := blurhash.ClampResolution(resolution)
	if !inRange && s.Logger != nil {
		s.Logger.Warn("sampler resolution out of range, clamped",
			slog.Int("requested", resolution), slog.Int("clamped", clamped))
	}

	outW, outH := shortEdgeResize(srcW, srcH, clamped)

	scaler := s.Scaler
	if scaler == nil {
		scaler = draw.BiLinear
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scaler.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	pm := blurhash.NewPixelMap(outW, outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			c := dst.RGBAAt(x, y)
			pm.Set(x, y, blurhash.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return pm, nil
}

// shortEdgeResize computes output dimensions so the shorter edge is exactly
// resolution and the longer edge preserves aspect, per spec §6's pixel
// sampler contract.
func shortEdgeResize(srcW, srcH, resolution int) (w, h int) {
	if srcW <= srcH {
		w = resolution
		h = int(math.Round(float64(resolution) * float64(srcH) / float64(srcW)))
	} else {
		h = resolution
		w = int(math.Round(float64(resolution) * float64(srcW) / float64(srcH)))
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
