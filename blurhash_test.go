package blurhash

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/go-blurhash/internal/base83"
)

func flatMap(w, h int, r, g, b uint8) *PixelMap {
	pm := NewPixelMap(w, h)
	for i := range pm.Pix {
		pm.Pix[i] = RGB{R: r, G: g, B: b}
	}
	return pm
}

// S1 - Flat black.
func TestScenarioFlatBlack(t *testing.T) {
	pm := flatMap(8, 8, 0, 0, 0)
	hash, err := Encode(pm, ExplicitRatio(4, 3), false)
	require.NoError(t, err)
	require.Len(t, hash, 6+2*(4*3-1))

	header, err := decodeHeaderForTest(hash)
	require.NoError(t, err)
	assert.Equal(t, 4, header.x)
	assert.Equal(t, 3, header.y)

	d, err := parseHash(hash, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 4, d.x)
	assert.Equal(t, 3, d.y)

	dc := d.components[0]
	assert.InDelta(t, 0, dc.R, 1e-9)
	assert.InDelta(t, 0, dc.G, 1e-9)
	assert.InDelta(t, 0, dc.B, 1e-9)

	for _, c := range d.components[1:] {
		assert.InDelta(t, 0, c.R, 1e-9)
		assert.InDelta(t, 0, c.G, 1e-9)
		assert.InDelta(t, 0, c.B, 1e-9)
	}
}

// decodeHeaderForTest is a tiny local helper so TestScenarioFlatBlack can
// sanity-check the header byte independently of parseHash's own decoding,
// giving invariant 6 (header byte) a second, independent code path.
type headerInfo struct{ x, y int }

func decodeHeaderForTest(hash string) (headerInfo, error) {
	header, err := base83.Decode(hash[0:1])
	if err != nil {
		return headerInfo{}, err
	}
	return headerInfo{x: header%9 + 1, y: header/9 + 1}, nil
}

// S2 - Flat mid-gray.
func TestScenarioFlatMidGray(t *testing.T) {
	pm := flatMap(4, 4, 128, 128, 128)
	hash, err := Encode(pm, ExplicitRatio(1, 1), false)
	require.NoError(t, err)
	require.Len(t, hash, 6)

	out, err := Decode(hash, 4, 4, 1.0)
	require.NoError(t, err)
	for _, p := range out.Pix {
		assert.InDelta(t, 128, int(p.R), 1)
		assert.InDelta(t, 128, int(p.G), 1)
		assert.InDelta(t, 128, int(p.B), 1)
	}
}

// S3 - Horizontal gradient.
func TestScenarioHorizontalGradient(t *testing.T) {
	pm := NewPixelMap(16, 1)
	for i := 0; i < 16; i++ {
		r := uint8(math.Round(255 * float64(i) / 15))
		pm.Pix[i] = RGB{R: r, G: 0, B: 0}
	}

	hash, err := Encode(pm, ExplicitRatio(4, 1), false)
	require.NoError(t, err)

	out, err := Decode(hash, 16, 1, 1.0)
	require.NoError(t, err)

	prev := -1
	for x := 0; x < 16; x++ {
		r := int(out.At(x, 0).R)
		assert.GreaterOrEqual(t, r, prev, "red channel should be non-decreasing at x=%d", x)
		prev = r
	}
}

// S5 - Prefix.
func TestScenarioPrefix(t *testing.T) {
	pm := NewPixelMap(640, 480)
	for i := range pm.Pix {
		pm.Pix[i] = RGB{R: uint8(i % 251), G: uint8((i * 3) % 251), B: uint8((i * 7) % 251)}
	}

	hash, err := Encode(pm, InferRatio(), true)
	require.NoError(t, err)

	re := regexp.MustCompile(`^<640:480>[0-9A-Za-z#$%*+,\-.:;=?@\[\]^_{|}~]+$`)
	assert.Regexp(t, re, hash)

	out, err := Decode(hash, 320, 0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 320, out.Width)
	assert.Equal(t, 240, out.Height)
}

// S6 - Corrupted length.
func TestScenarioCorruptedLength(t *testing.T) {
	pm := flatMap(8, 8, 10, 20, 30)
	hash, err := Encode(pm, ExplicitRatio(3, 3), false)
	require.NoError(t, err)

	truncated := hash[:len(hash)-1]
	_, err = Decode(truncated, 8, 8, 1.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHashLength))
}

// Invariant 6 - header byte, across the full (X,Y) grid.
func TestInvariantHeaderByte(t *testing.T) {
	pm := flatMap(8, 8, 5, 5, 5)
	for x := 1; x <= 9; x++ {
		for y := 1; y <= 9; y++ {
			hash, err := Encode(pm, ExplicitRatio(x, y), false)
			require.NoError(t, err)
			d, err := parseHash(hash, 1.0)
			require.NoError(t, err)
			assert.Equal(t, x, d.x)
			assert.Equal(t, y, d.y)
		}
	}
}

// Invariant 4 - length law.
func TestInvariantLengthLaw(t *testing.T) {
	pm := flatMap(8, 8, 1, 2, 3)
	for x := 1; x <= 9; x++ {
		for y := 1; y <= 9; y++ {
			hash, err := Encode(pm, ExplicitRatio(x, y), false)
			require.NoError(t, err)
			assert.Len(t, hash, 6+2*(x*y-1))
		}
	}
}

// Invariant 7 - prefix reversibility.
func TestInvariantPrefixReversibility(t *testing.T) {
	pm := flatMap(100, 50, 200, 100, 50)
	hash, err := Encode(pm, ExplicitRatio(4, 2), true)
	require.NoError(t, err)
	require.True(t, len(hash) > 0 && hash[0] == '<')

	out, err := Decode(hash, 0, 0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, 50, out.Height)
}

// Invariant 5 - DC exactness: re-encoding a decode should recover the same
// linear DC value per channel, within 1/255. Decode reconstructs the average
// only approximately, because even a flat image carries small odd-frequency
// AC terms under the cos(pi*i*x/W) basis and those are quantised.
func TestInvariantDCExactnessFlat(t *testing.T) {
	pm := flatMap(32, 24, 77, 140, 210)
	hash, err := Encode(pm, ExplicitRatio(3, 3), false)
	require.NoError(t, err)

	out, err := Decode(hash, 32, 24, 1.0)
	require.NoError(t, err)

	hash2, err := Encode(out, ExplicitRatio(3, 3), false)
	require.NoError(t, err)

	d1, err := parseHash(hash, 1.0)
	require.NoError(t, err)
	d2, err := parseHash(hash2, 1.0)
	require.NoError(t, err)

	assert.InDelta(t, d1.components[0].R, d2.components[0].R, 1.0/255)
	assert.InDelta(t, d1.components[0].G, d2.components[0].G, 1.0/255)
	assert.InDelta(t, d1.components[0].B, d2.components[0].B, 1.0/255)
}

func TestEncodeRejectsZeroSizedMap(t *testing.T) {
	_, err := Encode(&PixelMap{}, DefaultRatio(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestEncodeRejectsOutOfRangeComponents(t *testing.T) {
	pm := flatMap(8, 8, 1, 1, 1)
	_, err := Encode(pm, ExplicitRatio(10, 1), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrComponentsOutOfRange))
}

func TestDecodeWithoutPrefixOrDimensionsFails(t *testing.T) {
	pm := flatMap(8, 8, 1, 1, 1)
	hash, err := Encode(pm, ExplicitRatio(3, 3), false)
	require.NoError(t, err)

	_, err = Decode(hash, 0, 0, 1.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestDecodeToPixelsPassThrough(t *testing.T) {
	pm := flatMap(4, 4, 9, 9, 9)
	out, err := DecodeToPixels(pm, 64)
	require.NoError(t, err)
	assert.Same(t, pm, out)
}

func TestDecodeToPixelsFromHashWithPrefix(t *testing.T) {
	pm := NewPixelMap(640, 320)
	for i := range pm.Pix {
		pm.Pix[i] = RGB{R: uint8(i), G: uint8(i * 2), B: uint8(i * 3)}
	}
	hash, err := Encode(pm, ExplicitRatio(4, 3), true)
	require.NoError(t, err)

	out, err := DecodeToPixels(hash, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, out.Width)
	assert.Equal(t, 32, out.Height)
}
