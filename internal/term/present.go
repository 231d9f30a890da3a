// Package term presents a surface.Framebuffer in a terminal using
// half-block cells.
package term

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/carrilhoac/nanogl/pkg/surface"
)

// Decode converts one raw pixel element into an RGBA color for
// terminal display.
type Decode[T surface.PixelElement] func(T) color.Color

// Present draws fb onto scr within area, packing two framebuffer rows
// into each terminal row with the upper-half-block character: the top
// row's color becomes the foreground, the bottom row's the background.
// fb's height should be 2x the terminal area's height.
func Present[T surface.PixelElement](fb surface.Framebuffer[T], decode Decode[T], scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1
		if botY >= fb.Height() {
			break
		}

		topRow := fb.Row(topY)
		botRow := fb.Row(botY)

		for col := area.Min.X; col < area.Max.X && col < fb.Width(); col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: decode(topRow[col]),
					Bg: decode(botRow[col]),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// DecodeGrey8 expands an 8-bit greyscale element to an opaque RGBA
// color.
func DecodeGrey8(v surface.Color8) color.Color {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// DecodeRGB565 expands a 16-bit RGB565 element to an opaque RGBA
// color.
func DecodeRGB565(v surface.Color16) color.Color {
	r := uint8(v>>11) & 0x1F
	g := uint8(v>>5) & 0x3F
	b := uint8(v) & 0x1F
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 255,
	}
}
