package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "concentric",
			a:        Circle{Center: Vec{X: 10, Y: 10}, R: 5},
			b:        Circle{Center: Vec{X: 10, Y: 10}, R: 1},
			expected: true,
		},
		{
			name:     "overlapping",
			a:        Circle{Center: Vec{X: 0, Y: 0}, R: 5},
			b:        Circle{Center: Vec{X: 6, Y: 8}, R: 6},
			expected: true,
		},
		{
			name:     "touching (no overlap)",
			a:        Circle{Center: Vec{X: 0, Y: 0}, R: 5},
			b:        Circle{Center: Vec{X: 6, Y: 8}, R: 5},
			expected: false,
		},
		{
			name:     "far apart",
			a:        Circle{Center: Vec{X: 0, Y: 0}, R: 5},
			b:        Circle{Center: Vec{X: 100, Y: 0}, R: 5},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleTouchesSegment(t *testing.T) {
	seg := VSegment{X: 100, Top: 200, Bottom: 550}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"beside the beam", Circle{Center: Vec{X: 130, Y: 300}, R: 40}, true},
		{"too far sideways", Circle{Center: Vec{X: 150, Y: 300}, R: 40}, false},
		{"above the tip, in reach", Circle{Center: Vec{X: 100, Y: 170}, R: 40}, true},
		{"above the tip, out of reach", Circle{Center: Vec{X: 100, Y: 150}, R: 40}, false},
		{"exactly at radius", Circle{Center: Vec{X: 140, Y: 300}, R: 40}, true},
		{"diagonal from tip", Circle{Center: Vec{X: 130, Y: 160}, R: 49}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Touches(seg); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSegmentClosest(t *testing.T) {
	seg := VSegment{X: 10, Top: 0, Bottom: 50}

	if p := seg.Closest(Vec{X: 30, Y: 25}); p != (Vec{X: 10, Y: 25}) {
		t.Errorf("Closest inside range = %+v, expected (10, 25)", p)
	}
	if p := seg.Closest(Vec{X: 30, Y: -5}); p != (Vec{X: 10, Y: 0}) {
		t.Errorf("Closest above = %+v, expected (10, 0)", p)
	}
	if p := seg.Closest(Vec{X: 30, Y: 80}); p != (Vec{X: 10, Y: 50}) {
		t.Errorf("Closest below = %+v, expected (10, 50)", p)
	}
}

func TestPolar(t *testing.T) {
	v := Polar(math.Pi/2, 3)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-3) > 1e-9 {
		t.Errorf("Polar(pi/2, 3) = %+v, expected (0, 3)", v)
	}
	if l := Polar(1.234, 7).Len(); math.Abs(l-7) > 1e-9 {
		t.Errorf("Polar length = %f, expected 7", l)
	}
}

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("RNGs with the same seed diverged at step %d", i)
		}
	}

	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f, expected [0, 1)", f)
		}
		v := r.Range(-2, 2)
		if v < -2 || v >= 2 {
			t.Fatalf("Range(-2, 2) = %f, out of range", v)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d, out of range", n)
		}
	}

	if NewRNG(0).State() != 1 {
		t.Error("Zero seed should be replaced by 1")
	}
}
