package raster

import (
	"math"

	"github.com/carrilhoac/nanogl/pkg/math3d"
)

// degToHalfAngleRad converts a full horizontal field of view in
// degrees to the half-angle in radians used by the projection-plane
// distance formula below: fov * (pi / 360).
const degToHalfAngleRad = math.Pi / 360

// newFrustum derives the viewport center and the projection-plane
// distance from the field of view, and retains the near/far clip
// distances.
func newFrustum(viewport math3d.Vector2, near, far, fovDegrees float32) Frustum {
	center := math3d.V2(viewport.X*0.5, viewport.Y*0.5)
	projection := center.X / float32(math.Tan(float64(fovDegrees)*degToHalfAngleRad))

	return Frustum{
		Center: center,
		Plane:  [3]float32{PlaneNear: near, PlaneFar: far, PlaneProjection: projection},
		FOV:    fovDegrees,
	}
}
