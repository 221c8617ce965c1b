// Package fixture provides a small set of canonical row-major RGB pixel
// grids for golden tests and the CLI's demo command, stored zlib-compressed
// in memory the same way the teacher stores EXR channel data
// (compression/zip.go): a bytes.Buffer fed through klauspost/compress's
// zlib.Writer on the way in, its zlib.Reader on the way out.
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Fixture is a named W×H row-major RGB pixel grid, held compressed.
type Fixture struct {
	Name          string
	Width, Height int

	mu         sync.Mutex
	compressed []byte
}

// Pixels decompresses and returns the fixture's row-major RGB bytes
// (len == Width*Height*3).
func (f *Fixture) Pixels() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	zr, err := zlib.NewReader(bytes.NewReader(f.compressed))
	if err != nil {
		return nil, fmt.Errorf("fixture: opening %q: %w", f.Name, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("fixture: decompressing %q: %w", f.Name, err)
	}
	want := f.Width * f.Height * 3
	if len(raw) != want {
		return nil, fmt.Errorf("fixture: %q decompressed to %d bytes, want %d", f.Name, len(raw), want)
	}
	return raw, nil
}

var (
	registryMu sync.Mutex
	registry   = map[string]*Fixture{}
)

func register(name string, w, h int, raw []byte) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		panic(fmt.Sprintf("fixture: %q: %v", name, err))
	}
	if _, err := zw.Write(raw); err != nil {
		panic(fmt.Sprintf("fixture: %q: %v", name, err))
	}
	if err := zw.Close(); err != nil {
		panic(fmt.Sprintf("fixture: %q: %v", name, err))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = &Fixture{Name: name, Width: w, Height: h, compressed: buf.Bytes()}
}

// Get looks up a registered fixture by name.
func Get(name string) (*Fixture, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	f, ok := registry[name]
	return f, ok
}

// Names returns all registered fixture names, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	register("flat-black", 8, 8, flat(8, 8, 0, 0, 0))
	register("flat-midgray", 4, 4, flat(4, 4, 128, 128, 128))
	register("gradient-h-16x1", 16, 1, gradientH(16))
	register("checker-64", 64, 64, checker(64, 64, 8))
	register("sky-reference-32x20", 32, 20, skyReference(32, 20))
}

func flat(w, h int, r, g, b byte) []byte {
	out := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		out[i*3] = r
		out[i*3+1] = g
		out[i*3+2] = b
	}
	return out
}

func gradientH(w int) []byte {
	out := make([]byte, w*3)
	for i := 0; i < w; i++ {
		out[i*3] = byte(math.Round(255 * float64(i) / float64(w-1)))
	}
	return out
}

func checker(w, h, cell int) []byte {
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := (y*w + x) * 3
			if ((x/cell)+(y/cell))%2 == 0 {
				out[idx], out[idx+1], out[idx+2] = 235, 235, 235
			} else {
				out[idx], out[idx+1], out[idx+2] = 20, 20, 20
			}
		}
	}
	return out
}

// skyReference is a synthetic stand-in for the public BlurHash "Red sky
// over Wolt office" test image: a warm gradient from deep orange at the
// top to a muted blue-gray horizon band at the bottom. It is not the
// literal published test vector (those source pixels aren't part of this
// module's retrieved corpus) — it exists so the demo command and the fixture
// tests have a non-trivial, reproducible image to exercise, without
// claiming bit-identical output to the upstream reference string.
func skyReference(w, h int) []byte {
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		r := lerp(214, 92, t)
		g := lerp(94, 104, t)
		b := lerp(46, 128, t)
		for x := 0; x < w; x++ {
			idx := (y*w + x) * 3
			out[idx] = r
			out[idx+1] = g
			out[idx+2] = b
		}
	}
	return out
}

func lerp(a, b byte, t float64) byte {
	return byte(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
