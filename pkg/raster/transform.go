package raster

import (
	"github.com/carrilhoac/nanogl/pkg/math3d"
	"github.com/carrilhoac/nanogl/pkg/surface"
)

// transformAndCull moves every vertex from model space through world
// and view space, computes the view-space face normal, applies the
// backface test, and projects surviving polygons to screen space.
//
// The backface sign convention is load-bearing and intentionally not
// "fixed": a polygon is backfacing when the view direction to its
// first vertex and its face normal point the same way, i.e.
// dot(normalize(view[0]), normal) >= 0.
func transformAndCull[T surface.PixelElement](c *Context[T], buf *PolygonBuffer[T], model *math3d.AffineMatrix) {
	for i := range buf.Polys {
		p := &buf.Polys[i]

		for j := range p.Verts {
			v := &p.Verts[j]
			if model != nil {
				v.World = model.Transform(v.Model)
			} else {
				v.World = v.Model
			}
			v.View = c.worldview.Transform(v.World)
		}

		edge1 := p.Verts[1].View.Sub(p.Verts[0].View)
		edge2 := p.Verts[2].View.Sub(p.Verts[0].View)
		p.Normal = edge1.Cross(edge2).Normalize()

		viewDir := p.Verts[0].View.Normalize()
		p.Backfacing = viewDir.Dot(p.Normal) >= 0
		if p.Backfacing {
			continue
		}

		// Projection divides by view.Z below; a vertex at or behind the
		// eye has no valid projection. This is not the near-plane test
		// (that stays per-pixel in the span rasterizer) — it only
		// guards the division itself.
		if p.Verts[0].View.Z <= 0 || p.Verts[1].View.Z <= 0 || p.Verts[2].View.Z <= 0 {
			p.Backfacing = true
			continue
		}

		r := c.frustum.Plane[PlaneProjection]
		center := c.frustum.Center
		for j := range p.Verts {
			v := &p.Verts[j]
			k := r / v.View.Z
			v.Screen.X = v.View.X*k + center.X
			v.Screen.Y = v.View.Y*k + center.Y
			v.Screen.Z = v.View.Z
		}
	}
}
