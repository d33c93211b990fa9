package geometry

import (
	"math"
	"testing"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	tests := []struct {
		name string
		got  Vector2D
		want Vector2D
	}{
		{"Add", v1.Add(v2), Vector2D{4, 6}},
		{"Sub", v1.Sub(v2), Vector2D{-2, -2}},
		{"Mul", v1.Mul(2), Vector2D{2, 4}},
		{"Lerp half", Vector2D{0, 0}.Lerp(Vector2D{10, 10}, 0.5), Vector2D{5, 5}},
		{"Lerp end", v1.Lerp(v2, 1), v2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.want) {
				t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestVector_Dot(t *testing.T) {
	if got := (Vector2D{1, 0}).Dot(Vector2D{0, 1}); got != 0 {
		t.Errorf("Dot orthogonal = %v; want 0", got)
	}
	if got := (Vector2D{1, 0}).Dot(Vector2D{2, 0}); got != 2 {
		t.Errorf("Dot parallel = %v; want 2", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4}

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		if !got.Eq(Vector2D{0.6, 0.8}) {
			t.Errorf("Normalize = %v; want (0.6, 0.8)", got)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		got := Vector2D{}.Normalize()
		if !got.Eq(Vector2D{}) || !got.IsFinite() {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})
}

func TestVector_ClampLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want Vector2D
	}{
		{"shorter untouched", Vector2D{0.3, 0.4}, 1, Vector2D{0.3, 0.4}},
		{"longer rescaled", Vector2D{3, 4}, 1.5, Vector2D{0.9, 1.2}},
		{"zero untouched", Vector2D{}, 1, Vector2D{}},
		{"exact untouched", Vector2D{0, 2}, 2, Vector2D{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLen(tt.max)
			if !got.Eq(tt.want) {
				t.Errorf("%v.ClampLen(%v) = %v; want %v", tt.v, tt.max, got, tt.want)
			}
		})
	}
}

func TestVector_ClampAxes(t *testing.T) {
	got := Vector2D{55, -90}.ClampAxes(40)
	if !got.Eq(Vector2D{40, -40}) {
		t.Errorf("ClampAxes = %v; want (40, -40)", got)
	}
	got = Vector2D{3, -4}.ClampAxes(40)
	if !got.Eq(Vector2D{3, -4}) {
		t.Errorf("ClampAxes inside = %v; want (3, -4)", got)
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5}

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("IsFinite(1,2) = false; want true")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("IsFinite(NaN,0) = true; want false")
	}
	if (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("IsFinite(0,-Inf) = true; want false")
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}
	if !v.Eq(Vector2D{1 + Epsilon/2, 2 - Epsilon/2}) {
		t.Error("Eq epsilon match failed")
	}
	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}
