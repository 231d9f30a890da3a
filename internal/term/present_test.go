package term

import (
	"image/color"
	"testing"

	"github.com/carrilhoac/nanogl/pkg/surface"
)

func TestDecodeGrey8(t *testing.T) {
	tests := []struct {
		name string
		grey uint8
	}{
		{"mid grey", 128},
		{"black", 0},
		{"white", 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := DecodeGrey8(tc.grey).(color.RGBA)
			if c.R != tc.grey || c.G != tc.grey || c.B != tc.grey || c.A != 255 {
				t.Errorf("DecodeGrey8(%d) = %+v", tc.grey, c)
			}
		})
	}
}

func TestDecodeRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"white", 255, 255, 255},
		{"black", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			packed := surface.EncodeRGB565(tc.r, tc.g, tc.b)
			c := DecodeRGB565(packed).(color.RGBA)
			if c.R != tc.r || c.G != tc.g || c.B != tc.b {
				t.Errorf("round-trip(%d,%d,%d) = %+v", tc.r, tc.g, tc.b, c)
			}
		})
	}
}
