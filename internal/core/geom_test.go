package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5 triangle", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative coords", Vec2{-1, -1}, Vec2{2, 3}, 5},
		{"horizontal", Vec2{-10, 0}, Vec2{10, 0}, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		deg  float64
		x, y float64
	}{
		{0, 1, 0},
		{90, 0, 1},
		{180, -1, 0},
		{270, 0, -1},
	}

	for _, tc := range tests {
		v := Heading(tc.deg)
		if math.Abs(v.X-tc.x) > eps || math.Abs(v.Y-tc.y) > eps {
			t.Errorf("Heading(%v) = (%v, %v), expected (%v, %v)", tc.deg, v.X, v.Y, tc.x, tc.y)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{370, 10},
		{-90, 270},
		{-720, 0},
	}

	for _, tc := range tests {
		got := NormalizeDegrees(tc.in)
		if math.Abs(got-tc.expected) > eps {
			t.Errorf("NormalizeDegrees(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v, out of [0, 360)", tc.in, got)
		}
	}
}

func TestVecOps(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4}).Scale(2)
	if v != (Vec2{8, 12}) {
		t.Errorf("Add/Scale = %v, expected {8 12}", v)
	}
	if d := (Vec2{5, 5}).Sub(Vec2{2, 1}); d != (Vec2{3, 4}) {
		t.Errorf("Sub = %v, expected {3 4}", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
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
		{415.0, -410.0, 410.0, 410.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
