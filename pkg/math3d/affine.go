package math3d

// AffineMatrix is a 3x4 row-major affine transform: rotation/scale in
// columns 0..2, translation in column 3. The implicit fourth row is
// (0, 0, 0, 1).
type AffineMatrix [3][4]float32

// Transform applies the affine transform to v, treating v as having an
// implicit homogeneous coordinate of 1.
func (m AffineMatrix) Transform(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}
