package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", got)
	}
}

func TestLerpEndpointsExact(t *testing.T) {
	tests := []struct{ a, b float32 }{
		{0.1, 0.3},
		{0.7, 0.2},
		{1.0, 0.05},
		{0.333, 0.777},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, 0); got != tt.a {
			t.Errorf("Lerp(%v, %v, 0) = %v, want %v", tt.a, tt.b, got, tt.a)
		}
		if got := Lerp(tt.a, tt.b, 1); got != tt.b {
			t.Errorf("Lerp(%v, %v, 1) = %v, want %v", tt.a, tt.b, got, tt.b)
		}
	}
}

func TestLerpColor(t *testing.T) {
	a := Color{0, 0.2, 1}
	b := Color{1, 0.4, 0}
	got := LerpColor(a, b, 0.5)
	want := Color{0.5, 0.3, 0.5}
	if d := got.R - want.R; d > 0.0001 || d < -0.0001 {
		t.Errorf("LerpColor R: expected %v, got %v", want.R, got.R)
	}
	if d := got.G - want.G; d > 0.0001 || d < -0.0001 {
		t.Errorf("LerpColor G: expected %v, got %v", want.G, got.G)
	}
	if LerpColor(a, b, 1) != b {
		t.Errorf("LerpColor at t=1 should equal b")
	}
}

func TestColorBytes(t *testing.T) {
	r, g, b := Color{1.5, 0.5, -1}.Bytes()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("Color.Bytes() = (%d,%d,%d), want (255,128,0)", r, g, b)
	}
	if c := RGB(255, 0, 255); c != (Color{1, 0, 1}) {
		t.Errorf("RGB(255,0,255) = %v", c)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{-0.5, 0},
		{0.25, 0.25},
		{1.2, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
