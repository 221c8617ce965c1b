package quant

import "testing"

func TestFixpoints(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{-1, 0},
		{0, 9},
		{1, 18},
	}
	for _, tt := range tests {
		if got := Quantize(tt.v); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestDequantizeFixpoints(t *testing.T) {
	tests := []struct {
		q    int
		want float64
	}{
		{0, -1},
		{9, 0},
		{18, 1},
	}
	for _, tt := range tests {
		if got := Dequantize(tt.q); got != tt.want {
			t.Errorf("Dequantize(%d) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestQuantizeClampsRange(t *testing.T) {
	if got := Quantize(-5); got != 0 {
		t.Errorf("Quantize(-5) = %d, want 0", got)
	}
	if got := Quantize(5); got != 18 {
		t.Errorf("Quantize(5) = %d, want 18", got)
	}
}

func TestQuantizeMonotonic(t *testing.T) {
	prev := -1
	for i := 0; i <= 200; i++ {
		v := -1.0 + float64(i)*(2.0/200.0)
		q := Quantize(v)
		if q < prev {
			t.Fatalf("Quantize not monotonic at v=%v: %d < %d", v, q, prev)
		}
		prev = q
	}
}
