// nanogl-demo - terminal viewer for the nanogl software rasterizer.
// Loads a glTF/GLB mesh and orbits a spring-damped camera around it.
//
// Controls:
//
//	A/D   - Nudge the orbit spin left/right
//	Space - Apply a random spin impulse
//	R     - Reset the orbit
//	Esc   - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/carrilhoac/nanogl/internal/asset"
	"github.com/carrilhoac/nanogl/internal/term"
	"github.com/carrilhoac/nanogl/pkg/math3d"
	"github.com/carrilhoac/nanogl/pkg/raster"
	"github.com/carrilhoac/nanogl/pkg/surface"
)

var (
	targetFPS = flag.Int("fps", 30, "target frames per second")
	fov       = flag.Float64("fov", 60, "horizontal field of view, in degrees")
	orbitDist = flag.Float64("distance", 4, "camera orbit distance from the mesh origin")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "nanogl-demo - terminal viewer for the nanogl rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: nanogl-demo [options] <model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// orbitAxis tracks an orbit angle and a spring-damped velocity, the
// same shape the original viewer uses for its rotation axes: velocity
// decays toward zero via a critically damped spring instead of being
// clamped or stepped down by a fixed factor.
type orbitAxis struct {
	angle    float64
	velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newOrbitAxis(fps int) orbitAxis {
	return orbitAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *orbitAxis) update() {
	a.angle += a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
}

func run(modelPath string) error {
	mesh, err := asset.LoadGLTF[uint8](modelPath, surface.EncodeGrey8FromRGBA)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	t := uv.DefaultTerminal()
	width, height, err := t.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	t.EnterAltScreen()
	t.HideCursor()
	t.Resize(width, height)

	cleanup := func() {
		t.ExitAltScreen()
		t.ShowCursor()
		t.Shutdown(context.Background())
	}
	defer cleanup()

	fbWidth, fbHeight := width, height*2
	if fbWidth < 320 {
		fbWidth = 320
	}
	if fbHeight < 240 {
		fbHeight = 240
	}

	ctx, err := raster.Init[uint8](surface.MemoryProvider[uint8]{})
	if err != nil {
		return fmt.Errorf("init raster context: %w", err)
	}
	if err := ctx.SetPerspective(math3d.V2(float32(fbWidth), float32(fbHeight)), 0.1, 100, float32(*fov)); err != nil {
		return fmt.Errorf("set perspective: %w", err)
	}

	orbit := newOrbitAxis(*targetFPS)

	sigCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range t.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				t.Erase()
				t.Resize(width, height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					orbit.velocity -= 0.02
				case ev.MatchString("d", "right"):
					orbit.velocity += 0.02
				case ev.MatchString("r"):
					orbit = newOrbitAxis(*targetFPS)
				case ev.MatchString("space"):
					orbit.velocity += (rand.Float64() - 0.5) * 0.3
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-sigCtx.Done():
			return nil
		default:
		}

		start := time.Now()
		orbit.update()

		eye := math3d.V3(
			float32(*orbitDist*math.Sin(orbit.angle)),
			0.5,
			float32(*orbitDist*math.Cos(orbit.angle)),
		)
		dir := eye.Scale(-1).Normalize()
		cam := &raster.Camera{Eye: eye, Dir: dir, Up: math3d.V3(0, 1, 0)}
		ctx.SetCamera(cam)

		ctx.Clear(surface.DefaultClearGrey8)
		ctx.Render(mesh, nil)

		scr := uv.NewScreenBuffer(width, height)
		term.Present[uint8](ctx.Framebuffer(), term.DecodeGrey8, scr, uv.Rect(0, 0, width, height))
		if err := t.Display(scr); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(start); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
