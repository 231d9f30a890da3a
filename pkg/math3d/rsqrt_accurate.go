//go:build !fastmath

package math3d

import "math"

// Rsqrt computes 1/sqrt(x) using the hardware square root. Built by
// default; build with the fastmath tag to switch to the bit-hack
// approximation used by the original C rasterizer.
func Rsqrt(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}
