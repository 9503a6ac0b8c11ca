package gamemath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3_AddSubScale(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		sum  Vec3
		diff Vec3
	}{
		{
			name: "Axis aligned",
			a:    Vec3{X: 1, Y: 2, Z: 3},
			b:    Vec3{X: 4, Y: 5, Z: 6},
			sum:  Vec3{X: 5, Y: 7, Z: 9},
			diff: Vec3{X: -3, Y: -3, Z: -3},
		},
		{
			name: "With negatives",
			a:    Vec3{X: -1, Y: 0, Z: 2.5},
			b:    Vec3{X: 1, Y: -2, Z: 0.5},
			sum:  Vec3{X: 0, Y: -2, Z: 3},
			diff: Vec3{X: -2, Y: 2, Z: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); !vecAlmostEqual(got, tt.sum) {
				t.Errorf("Add: expected %v, got %v", tt.sum, got)
			}
			if got := tt.a.Sub(tt.b); !vecAlmostEqual(got, tt.diff) {
				t.Errorf("Sub: expected %v, got %v", tt.diff, got)
			}
			if got := tt.a.Scale(2).Sub(tt.a); !vecAlmostEqual(got, tt.a) {
				t.Errorf("Scale: expected %v, got %v", tt.a, got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 0, Z: 4}
	n := v.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if !vecAlmostEqual(n, Vec3{X: 0.6, Y: 0, Z: 0.8}) {
		t.Errorf("Expected direction preserved, got %v", n)
	}

	zero := Vec3{}.Normalize()
	if !vecAlmostEqual(zero, Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_Lengths(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 2}
	if !almostEqual(v.Length(), 3) {
		t.Errorf("Expected length 3, got %f", v.Length())
	}
	if !almostEqual(v.LengthSquared(), 9) {
		t.Errorf("Expected length squared 9, got %f", v.LengthSquared())
	}
	if !almostEqual(v.HorizontalLength(), math.Sqrt(5)) {
		t.Errorf("Expected horizontal length sqrt(5), got %f", v.HorizontalLength())
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := Vec3{X: 0, Y: 10, Z: -4}
	b := Vec3{X: 10, Y: 0, Z: 4}

	if got := a.Lerp(b, 0); !vecAlmostEqual(got, a) {
		t.Errorf("Lerp(0): expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); !vecAlmostEqual(got, b) {
		t.Errorf("Lerp(1): expected %v, got %v", b, got)
	}
	mid := Vec3{X: 5, Y: 5, Z: 0}
	if got := a.Lerp(b, 0.5); !vecAlmostEqual(got, mid) {
		t.Errorf("Lerp(0.5): expected %v, got %v", mid, got)
	}
}

func TestVec3_DotDistance(t *testing.T) {
	a := Vec3{X: 1, Y: 0, Z: 0}
	b := Vec3{X: 0, Y: 0, Z: 1}
	if !almostEqual(a.Dot(b), 0) {
		t.Errorf("Expected orthogonal dot 0, got %f", a.Dot(b))
	}
	if !almostEqual(a.Distance(b), math.Sqrt2) {
		t.Errorf("Expected distance sqrt(2), got %f", a.Distance(b))
	}
}
