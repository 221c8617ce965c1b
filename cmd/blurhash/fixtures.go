package main

import (
	"fmt"

	"github.com/mrjoshuak/go-blurhash"
	"github.com/mrjoshuak/go-blurhash/internal/fixture"
)

// pixelMapFromFixture loads a registered fixture and converts its raw
// row-major RGB bytes into a *blurhash.PixelMap.
func pixelMapFromFixture(name string) (*blurhash.PixelMap, error) {
	f, ok := fixture.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q (available: %v)", name, fixture.Names())
	}
	raw, err := f.Pixels()
	if err != nil {
		return nil, err
	}
	pm := blurhash.NewPixelMap(f.Width, f.Height)
	for i := range pm.Pix {
		pm.Pix[i] = blurhash.RGB{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return pm, nil
}
