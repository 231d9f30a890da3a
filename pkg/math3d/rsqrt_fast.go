//go:build fastmath

package math3d

import "math"

// Rsqrt computes an approximate reciprocal square root using the
// classic Quake III bit-hack initial guess followed by one
// Newton-Raphson refinement step. Selected by the fastmath build tag;
// deviates from the accurate 1/sqrt(x) by no more than ~0.2%.
func Rsqrt(x float32) float32 {
	xhalf := 0.5 * x
	i := math.Float32bits(x)
	i = 0x5f3759df - (i >> 1)
	y := math.Float32frombits(i)
	y = y * (1.5 - xhalf*y*y)
	return y
}
