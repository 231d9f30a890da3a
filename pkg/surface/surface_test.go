package surface

import "testing"

func TestMemorySurfaceRowFill(t *testing.T) {
	s := NewMemorySurface[uint8](4, 3)
	s.Fill(7)
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		if len(row) != s.Width() {
			t.Fatalf("row %d: len %d, want %d", y, len(row), s.Width())
		}
		for x, v := range row {
			if v != 7 {
				t.Errorf("pixel (%d,%d) = %d, want 7", x, y, v)
			}
		}
	}
}

func TestMemorySurfaceRowIndependence(t *testing.T) {
	s := NewMemorySurface[uint16](2, 2)
	s.Row(0)[0] = 1
	s.Row(0)[1] = 2
	s.Row(1)[0] = 3
	s.Row(1)[1] = 4
	if got := s.Row(1)[0]; got != 3 {
		t.Errorf("Row(1)[0] = %d, want 3", got)
	}
	if got := s.Row(0)[1]; got != 2 {
		t.Errorf("Row(0)[1] = %d, want 2", got)
	}
}

func TestMemoryProvider(t *testing.T) {
	var p MemoryProvider[uint8]
	fb, err := p.NewFramebuffer(320, 240)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	if fb.Width() != 320 || fb.Height() != 240 {
		t.Errorf("got %dx%d, want 320x240", fb.Width(), fb.Height())
	}
}

func TestEncodeRGB565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"white", 255, 255, 255, 0xFFFF},
		{"black", 0, 0, 0, 0},
		{"pure red", 255, 0, 0, 0xF800},
		{"pure green", 0, 255, 0, 0x07E0},
		{"pure blue", 0, 0, 255, 0x001F},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EncodeRGB565(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("EncodeRGB565(%d,%d,%d) = %#x, want %#x", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}
}
