package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatFromPitchRotate(t *testing.T) {
	tests := []struct {
		deg  float64
		want Vec3
	}{
		{0, Vec3{0, 0, 1}},
		{90, Vec3{0, -1, 0}},
		{180, Vec3{0, 0, -1}},
		{-90, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		got := QuatFromPitch(tt.deg).Rotate(Forward)
		if math.Abs(float64(got.X-tt.want.X)) > 0.001 ||
			math.Abs(float64(got.Y-tt.want.Y)) > 0.001 ||
			math.Abs(float64(got.Z-tt.want.Z)) > 0.001 {
			t.Errorf("pitch %v: expected %v, got %v", tt.deg, tt.want, got)
		}
	}
}
