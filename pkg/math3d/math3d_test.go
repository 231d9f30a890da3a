package math3d

import (
	"math"
	"testing"
)

func TestVector3Ops(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Sub(b); got != (Vector3{-3, -3, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v, want 32", got)
	}
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != (Vector3{0, 0, 1}) {
		t.Errorf("Cross: got %v", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
	}{
		{"3-4-5 in the xz plane", V3(3, 0, 4)},
		{"unit x", V3(1, 0, 0)},
		{"negative components", V3(-2, -2, -1)},
		{"small magnitude", V3(0.001, 0.002, 0.003)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize()
			length := math.Sqrt(float64(got.X*got.X + got.Y*got.Y + got.Z*got.Z))
			if math.Abs(length-1) > 0.01 {
				t.Errorf("Normalize(%v): length = %v, want ~1", tc.v, length)
			}
		})
	}
}

func TestRsqrt(t *testing.T) {
	tests := []struct {
		name string
		x    float32
	}{
		{"one", 1},
		{"two", 2},
		{"four", 4},
		{"nine", 9},
		{"hundred", 100},
		{"fraction", 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rsqrt(tc.x)
			want := float32(1 / math.Sqrt(float64(tc.x)))
			if diff := math.Abs(float64(got-want) / float64(want)); diff > 0.01 {
				t.Errorf("Rsqrt(%v) = %v, want ~%v (diff %v)", tc.x, got, want, diff)
			}
		})
	}
}

func TestAffineMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    AffineMatrix
		v    Vector3
		want Vector3
	}{
		{
			name: "pure translation",
			m: AffineMatrix{
				{1, 0, 0, 10},
				{0, 1, 0, 20},
				{0, 0, 1, 30},
			},
			v:    V3(1, 2, 3),
			want: V3(11, 22, 33),
		},
		{
			name: "identity",
			m: AffineMatrix{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 1, 0},
			},
			v:    V3(5, -2, 7),
			want: V3(5, -2, 7),
		},
		{
			name: "axis swap",
			m: AffineMatrix{
				{0, 1, 0, 0},
				{1, 0, 0, 0},
				{0, 0, 1, 0},
			},
			v:    V3(2, 5, 9),
			want: V3(5, 2, 9),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Transform(tc.v); got != tc.want {
				t.Errorf("Transform(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}
