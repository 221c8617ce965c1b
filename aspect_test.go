package blurhash

import "testing"

func TestReduce(t *testing.T) {
	tests := []struct {
		w, h  int
		wantW int
		wantH int
	}{
		{640, 480, 4, 3},
		{1920, 1080, 16, 9},
		{100, 100, 1, 1},
		{7, 0, 1, 0},
		{0, 7, 0, 1},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		gotW, gotH := Reduce(tt.w, tt.h)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("Reduce(%d,%d) = (%d,%d), want (%d,%d)", tt.w, tt.h, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func TestClassifyOrientation(t *testing.T) {
	tests := []struct {
		w, h int
		want Orientation
	}{
		{640, 480, Landscape},
		{480, 640, Portrait},
		{500, 500, Square},
	}
	for _, tt := range tests {
		if got := classifyOrientation(tt.w, tt.h); got != tt.want {
			t.Errorf("classifyOrientation(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestComponentsForAspectSquare(t *testing.T) {
	x, y := componentsForAspect(500, 500)
	if x != 5 || y != 5 {
		t.Errorf("componentsForAspect(500,500) = (%d,%d), want (5,5)", x, y)
	}
}

func TestComponentsForAspectLandscapeBiasesX(t *testing.T) {
	x, y := componentsForAspect(1920, 1080)
	if x <= y {
		t.Errorf("componentsForAspect(1920,1080) = (%d,%d), expected more components along the longer (width) edge", x, y)
	}
}

func TestComponentsForAspectPortraitBiasesY(t *testing.T) {
	x, y := componentsForAspect(1080, 1920)
	if y <= x {
		t.Errorf("componentsForAspect(1080,1920) = (%d,%d), expected more components along the longer (height) edge", x, y)
	}
}

func TestComponentsForAspectClampsToNine(t *testing.T) {
	x, y := componentsForAspect(10000, 1)
	if x > 9 || y > 9 || x < 1 || y < 1 {
		t.Errorf("componentsForAspect(10000,1) = (%d,%d), out of [1,9]", x, y)
	}
}
