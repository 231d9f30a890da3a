package math3d

import "testing"

func BenchmarkVector3Sub(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Sub(v2)
	}
}

func BenchmarkVector3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVector3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVector3Scale(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Scale(2.5)
	}
}

func BenchmarkVector3Normalize(b *testing.B) {
	v := V3(3, 4, 12)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkRsqrt(b *testing.B) {
	x := float32(42.0)

	for b.Loop() {
		_ = Rsqrt(x)
	}
}

func BenchmarkAffineMatrixTransform(b *testing.B) {
	m := AffineMatrix{
		{1, 0, 0, 10},
		{0, 1, 0, 20},
		{0, 0, 1, 30},
	}
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.Transform(v)
	}
}
