package fixture

import "testing"

func TestKnownFixturesDecompress(t *testing.T) {
	for _, name := range []string{"flat-black", "flat-midgray", "gradient-h-16x1", "checker-64", "sky-reference-32x20"} {
		f, ok := Get(name)
		if !ok {
			t.Fatalf("fixture %q not registered", name)
		}
		pix, err := f.Pixels()
		if err != nil {
			t.Fatalf("Pixels(%q): %v", name, err)
		}
		if len(pix) != f.Width*f.Height*3 {
			t.Errorf("%q: got %d bytes, want %d", name, len(pix), f.Width*f.Height*3)
		}
	}
}

func TestFlatBlackIsAllZero(t *testing.T) {
	f, _ := Get("flat-black")
	pix, err := f.Pixels()
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range pix {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestUnknownFixture(t *testing.T) {
	if _, ok := Get("does-not-exist"); ok {
		t.Fatal("expected ok=false for unregistered fixture")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}
