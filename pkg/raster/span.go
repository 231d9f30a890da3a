package raster

import "github.com/carrilhoac/nanogl/pkg/surface"

// rasterizeSegment walks the scanlines from y1 (inclusive) to y2
// (exclusive), filling each span between the left and right edges
// carried in st. For every pixel it recovers perspective-correct z,
// u, v from the interpolated 1/z, u/z, v/z, tests it against the
// depth buffer and the near/far planes, and on acceptance writes the
// depth and a nearest-neighbor texture sample.
func rasterizeSegment[T surface.PixelElement](c *Context[T], p *Polygon[T], y1, y2 int, st *rasterState) {
	near := c.frustum.Plane[PlaneNear]
	far := c.frustum.Plane[PlaneFar]
	w := c.framebuffer.Width()
	h := c.framebuffer.Height()

	for y1 < y2 {
		xa := int(st.xa)
		xb := int(st.xb)

		dx := 1 - (st.xa - float32(xa))
		iz := st.iza + dx*st.dIZdx
		uiz := st.uiza + dx*st.dUIZdx
		viz := st.viza + dx*st.dVIZdx

		yInBounds := y1 >= 0 && y1 < h
		zid := y1*w + xa

		var row []T
		if yInBounds {
			row = c.framebuffer.Row(y1)
		}

		x := xa
		for x < xb {
			x++
			z := 1 / iz
			u := uiz * z
			v := viz * z
			zid++

			if x >= 0 && x < w && yInBounds && z > near && z < far {
				if z < c.depth.Depth[zid] {
					c.depth.Depth[zid] = z
					texRow := p.Tex.Row(int(v))
					row[x] = texRow[int(u)]
				}
			}

			iz += st.dIZdx
			uiz += st.dUIZdx
			viz += st.dVIZdx
		}

		st.xa += st.dxdya
		st.xb += st.dxdyb
		st.iza += st.dizdya
		st.uiza += st.duizdya
		st.viza += st.dvizdya

		y1++
	}
}
