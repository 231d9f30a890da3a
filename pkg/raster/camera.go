package raster

import "github.com/carrilhoac/nanogl/pkg/math3d"

// worldViewMatrix builds the world-to-view affine transform for a
// camera: n is the forward axis, u is the right axis (dir x up), v is
// n x u, which for an orthonormal dir/up equals -up, so view-space Y
// grows downward. The rows are not renormalized, so a
// non-orthonormal dir/up introduces shear — matched intentionally.
func worldViewMatrix(cam *Camera) math3d.AffineMatrix {
	n := cam.Dir
	u := cam.Dir.Cross(cam.Up)
	v := n.Cross(u)

	return math3d.AffineMatrix{
		{u.X, u.Y, u.Z, -u.Dot(cam.Eye)},
		{v.X, v.Y, v.Z, -v.Dot(cam.Eye)},
		{n.X, n.Y, n.Z, -n.Dot(cam.Eye)},
	}
}
