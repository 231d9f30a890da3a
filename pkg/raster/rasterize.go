package raster

import "github.com/carrilhoac/nanogl/pkg/surface"

// rasterState carries the per-triangle constant gradients and the
// per-segment edge rates between rasterizePolygon and
// rasterizeSegment. It replaces the original's module-level 16-float
// scratch array with a stack-allocated struct passed by pointer, so
// concurrent rendering across independent Contexts never shares
// state.
type rasterState struct {
	// Per-triangle constant gradients (1/z, u/z, v/z per screen axis).
	dIZdx, dUIZdx, dVIZdx float32
	dIZdy, dUIZdy, dVIZdy float32

	// Per-segment edge state: left edge (a) and right edge (b).
	xa, xb                   float32
	iza, uiza, viza          float32
	dxdya, dxdyb             float32
	dizdya, duizdya, dvizdya float32
}

type rasterVertex struct {
	x, y, iz, uiz, viz float32
}

// rasterizePolygon rasterizes one already-projected, front-facing
// triangle: pixel-center shift, 1/z and uv/z setup, ascending Y-sort,
// degenerate rejection, gradient computation, long-edge selection, and
// dispatch to the upper and lower scanline segments.
func rasterizePolygon[T surface.PixelElement](c *Context[T], p *Polygon[T]) {
	var v [3]rasterVertex
	for i := 0; i < 3; i++ {
		s := p.Verts[i].Screen
		iz := 1 / s.Z
		v[i] = rasterVertex{
			x:   s.X + 0.5,
			y:   s.Y + 0.5,
			iz:  iz,
			uiz: p.Verts[i].Texture.X * iz,
			viz: p.Verts[i].Texture.Y * iz,
		}
	}

	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[0].y > v[2].y {
		v[0], v[2] = v[2], v[0]
	}
	if v[1].y > v[2].y {
		v[1], v[2] = v[2], v[1]
	}

	y1i, y2i, y3i := int(v[0].y), int(v[1].y), int(v[2].y)
	if y1i == y2i && y1i == y3i {
		return
	}

	x1, y1 := v[0].x, v[0].y
	x2, y2 := v[1].x, v[1].y
	x3, y3 := v[2].x, v[2].y
	iz1, uiz1, viz1 := v[0].iz, v[0].uiz, v[0].viz
	iz2, uiz2, viz2 := v[1].iz, v[1].uiz, v[1].viz
	iz3, uiz3, viz3 := v[2].iz, v[2].uiz, v[2].viz

	var st rasterState

	denom := (x3-x1)*(y2-y1) - (x2-x1)*(y3-y1)
	dy := 1 / denom
	st.dIZdx = ((iz3-iz1)*(y2-y1) - (iz2-iz1)*(y3-y1)) * dy
	st.dIZdy = ((iz2-iz1)*(x3-x1) - (iz3-iz1)*(x2-x1)) * dy
	st.dUIZdx = ((uiz3-uiz1)*(y2-y1) - (uiz2-uiz1)*(y3-y1)) * dy
	st.dVIZdx = ((viz3-viz1)*(y2-y1) - (viz2-viz1)*(y3-y1)) * dy
	st.dUIZdy = ((uiz2-uiz1)*(x3-x1) - (uiz3-uiz1)*(x2-x1)) * dy
	st.dVIZdy = ((viz2-viz1)*(x3-x1) - (viz3-viz1)*(x2-x1)) * dy

	var dxdy1, dxdy2, dxdy3 float32
	if y2 > y1 {
		dxdy1 = (x2 - x1) / (y2 - y1)
	}
	if y3 > y1 {
		dxdy2 = (x3 - x1) / (y3 - y1)
	}
	if y3 > y2 {
		dxdy3 = (x3 - x2) / (y3 - y2)
	}

	side := dxdy2 > dxdy1
	if y1 == y2 {
		side = x1 > x2
	}
	if y2 == y3 {
		side = x3 > x2
	}

	if !side {
		// The long edge (top to bottom) runs down the left side.
		st.dxdya = dxdy2
		st.dizdya = dxdy2*st.dIZdx + st.dIZdy
		st.duizdya = dxdy2*st.dUIZdx + st.dUIZdy
		st.dvizdya = dxdy2*st.dVIZdx + st.dVIZdy

		pre := 1 - (y1 - float32(y1i))
		st.xa = x1 + pre*st.dxdya
		st.iza = iz1 + pre*st.dizdya
		st.uiza = uiz1 + pre*st.duizdya
		st.viza = viz1 + pre*st.dvizdya

		if y1i < y2i {
			st.xb = x1 + pre*dxdy1
			st.dxdyb = dxdy1
			rasterizeSegment(c, p, y1i, y2i, &st)
		}
		if y2i < y3i {
			preB := 1 - (y2 - float32(y2i))
			st.xb = x2 + preB*dxdy3
			st.dxdyb = dxdy3
			rasterizeSegment(c, p, y2i, y3i, &st)
		}
	} else {
		// The long edge runs down the right side.
		pre := 1 - (y1 - float32(y1i))
		st.dxdyb = dxdy2
		st.xb = x1 + pre*st.dxdyb

		if y1i < y2i {
			st.dxdya = dxdy1
			st.dizdya = dxdy1*st.dIZdx + st.dIZdy
			st.duizdya = dxdy1*st.dUIZdx + st.dUIZdy
			st.dvizdya = dxdy1*st.dVIZdx + st.dVIZdy

			st.xa = x1 + pre*st.dxdya
			st.iza = iz1 + pre*st.dizdya
			st.uiza = uiz1 + pre*st.duizdya
			st.viza = viz1 + pre*st.dvizdya

			rasterizeSegment(c, p, y1i, y2i, &st)
		}
		if y2i < y3i {
			st.dxdya = dxdy3
			st.dizdya = dxdy3*st.dIZdx + st.dIZdy
			st.duizdya = dxdy3*st.dUIZdx + st.dUIZdy
			st.dvizdya = dxdy3*st.dVIZdx + st.dVIZdy

			preA := 1 - (y2 - float32(y2i))
			st.xa = x2 + preA*st.dxdya
			st.iza = iz2 + preA*st.dizdya
			st.uiza = uiz2 + preA*st.duizdya
			st.viza = viz2 + preA*st.dvizdya

			rasterizeSegment(c, p, y2i, y3i, &st)
		}
	}
}
