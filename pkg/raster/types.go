// Package raster implements a single-threaded, fixed-function software
// 3D pipeline: transform, backface cull, project, and scanline
// rasterize into a caller-supplied framebuffer.
package raster

import (
	"github.com/carrilhoac/nanogl/pkg/math3d"
	"github.com/carrilhoac/nanogl/pkg/surface"
)

// Vertex bundles every coordinate space a triangle corner passes
// through on its way to the screen, plus its texture coordinate.
type Vertex struct {
	Model, World, View, Screen math3d.Vector3
	Texture                    math3d.Vector2
}

// Polygon is a triangle: three vertices, the view-space face normal
// computed during transform, a backfacing flag, and the texture it
// samples from.
type Polygon[T surface.PixelElement] struct {
	Verts      [3]Vertex
	Normal     math3d.Vector3
	Backfacing bool
	Tex        surface.Texture[T]
}

// PolygonBuffer is an ordered, caller-owned sequence of polygons.
// Render mutates World/View/Screen/Normal/Backfacing in place.
type PolygonBuffer[T surface.PixelElement] struct {
	Polys []Polygon[T]
}

// DepthBuffer stores the nearest observed view-space Z per pixel.
type DepthBuffer struct {
	Depth []float32
	W, H  int
}

// Plane indices into Frustum.Plane.
const (
	PlaneNear = iota
	PlaneFar
	PlaneProjection
)

// Frustum derives the projection-plane distance from the field of view
// and the viewport, and retains the near/far clip distances.
type Frustum struct {
	Center math3d.Vector2
	Plane  [3]float32
	FOV    float32
}

// Camera holds an eye position and a forward/up basis. The pipeline
// does not renormalize Dir/Up (see worldViewMatrix); callers that want an
// orthonormal basis must supply one.
type Camera struct {
	Eye, Dir, Up math3d.Vector3
}
