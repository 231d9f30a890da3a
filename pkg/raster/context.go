package raster

import (
	"fmt"

	"github.com/carrilhoac/nanogl/pkg/math3d"
	"github.com/carrilhoac/nanogl/pkg/surface"
)

// state tracks a Context's lifecycle: Null -> Created (after
// SetPerspective) -> Ready (after SetCamera) -> Null (after Shutdown).
type state int

const (
	StateNull state = iota
	StateCreated
	StateReady
)

// Context owns the depth buffer and framebuffer for one rendering
// target, plus the camera and frustum currently in effect. It holds no
// package-level or shared mutable state, so independent Contexts never
// interfere with one another.
type Context[T surface.PixelElement] struct {
	st          state
	worldview   math3d.AffineMatrix
	camera      *Camera
	frustum     Frustum
	provider    surface.Provider[T]
	framebuffer surface.Framebuffer[T]
	depth       DepthBuffer
}

// Init creates a fresh, uninitialized Context. provider is used by
// SetPerspective to (re)allocate the framebuffer on every call, even
// when the viewport is unchanged; the Context owns whatever it returns.
func Init[T surface.PixelElement](provider surface.Provider[T]) (*Context[T], error) {
	if provider == nil {
		return nil, ErrInvalidArgument
	}
	return &Context[T]{provider: provider, st: StateNull}, nil
}

// Shutdown releases the Context's buffers and resets it to Null. The
// Context may be reused afterward via SetPerspective.
func (c *Context[T]) Shutdown() {
	c.depth = DepthBuffer{}
	c.framebuffer = nil
	c.camera = nil
	c.st = StateNull
}

// State reports the Context's current lifecycle state.
func (c *Context[T]) State() state { return c.st }

// Framebuffer returns the Context's current render target, or nil
// before the first successful SetPerspective.
func (c *Context[T]) Framebuffer() surface.Framebuffer[T] { return c.framebuffer }

// SetPerspective validates the viewport, derives the frustum from fov
// and the near/far distances, and (re)allocates the depth buffer and
// framebuffer. It fails with ErrInvalidViewport below 320x240, and
// with ErrOutOfMemory if buffer allocation fails. On success the
// Context enters Created.
func (c *Context[T]) SetPerspective(viewport math3d.Vector2, near, far, fovDegrees float32) error {
	if viewport.X < 320 || viewport.Y < 240 {
		return ErrInvalidViewport
	}

	w, h := int(viewport.X), int(viewport.Y)
	n := w * h
	if w <= 0 || h <= 0 || n/w != h {
		return ErrOutOfMemory
	}

	fb, err := c.provider.NewFramebuffer(w, h)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	c.framebuffer = fb
	c.depth = DepthBuffer{Depth: make([]float32, n), W: w, H: h}
	c.frustum = newFrustum(viewport, near, far, fovDegrees)
	c.st = StateCreated
	return nil
}

// SetCamera stores the camera and rebuilds the world-view matrix. It
// is a silent no-op before Created. On success the Context enters
// Ready.
func (c *Context[T]) SetCamera(camera *Camera) {
	if camera == nil || c.st < StateCreated {
		return
	}
	c.camera = camera
	c.worldview = worldViewMatrix(camera)
	c.st = StateReady
}

// Clear fills the depth buffer with the far plane distance and the
// framebuffer with color. It is a silent no-op before Created.
func (c *Context[T]) Clear(color T) {
	if c.st < StateCreated {
		return
	}

	far := c.frustum.Plane[PlaneFar]
	for i := range c.depth.Depth {
		c.depth.Depth[i] = far
	}

	for y := 0; y < c.framebuffer.Height(); y++ {
		row := c.framebuffer.Row(y)
		for x := range row {
			row[x] = color
		}
	}
}

// Render transforms, culls, and rasterizes every polygon in buf.
// model is the polygon's world transform; pass nil to treat Model
// coordinates as already in world space. It is a silent no-op before
// Ready.
func (c *Context[T]) Render(buf *PolygonBuffer[T], model *math3d.AffineMatrix) {
	if buf == nil || c.st < StateReady {
		return
	}

	transformAndCull(c, buf, model)

	for i := range buf.Polys {
		p := &buf.Polys[i]
		if p.Backfacing {
			continue
		}
		rasterizePolygon(c, p)
	}
}
