package render

import (
	"testing"

	"github.com/mrsinham/fracticon/internal/fractal"
	"github.com/mrsinham/fracticon/internal/palette"
)

var testPal = palette.Palette{
	Colors:     []palette.RGB{{R: 0, G: 0, B: 0}, {R: 100, G: 100, B: 100}, {R: 200, G: 200, B: 200}},
	Background: palette.RGB{R: 10, G: 10, B: 10},
}

func TestColorFor_InSetIsBlack(t *testing.T) {
	if got := ColorFor(80, 80, testPal, 0.37); got != (palette.RGB{}) {
		t.Errorf("ColorFor(maxIter) = %v, want black", got)
	}
}

func TestColorFor_Interpolation(t *testing.T) {
	pal := palette.Palette{Colors: []palette.RGB{{R: 0, G: 0, B: 0}, {R: 100, G: 200, B: 40}}}

	tests := []struct {
		name    string
		iter    int
		maxIter int
		offset  float64
		want    palette.RGB
	}{
		{"ramp start", 0, 10, 0, palette.RGB{R: 0, G: 0, B: 0}},
		{"midpoint", 5, 10, 0, palette.RGB{R: 50, G: 100, B: 20}},
		{"offset shifts", 0, 10, 0.5, palette.RGB{R: 50, G: 100, B: 20}},
		{"wraps past one", 5, 10, 0.75, palette.RGB{R: 25, G: 50, B: 10}},
		{"exactly one wraps to start", 5, 10, 0.5, palette.RGB{R: 0, G: 0, B: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ColorFor(tc.iter, tc.maxIter, pal, tc.offset); got != tc.want {
				t.Errorf("ColorFor(%d, %d, offset=%v) = %v, want %v", tc.iter, tc.maxIter, tc.offset, got, tc.want)
			}
		})
	}
}

func TestColorFor_SingleEntryPalette(t *testing.T) {
	pal := palette.Palette{Colors: []palette.RGB{{R: 42, G: 43, B: 44}}}
	if got := ColorFor(3, 10, pal, 0.9); got != (palette.RGB{R: 42, G: 43, B: 44}) {
		t.Errorf("single-entry palette returned %v", got)
	}
}

// quadGrid is a 2×2 grid with four distinct escape values.
func quadGrid() fractal.Grid {
	return fractal.Grid{{0, 1}, {2, 4}}
}

func quadParams() fractal.Params {
	return fractal.Params{Family: fractal.Julia, MaxIterations: 4, ColorOffset: 0}
}

func TestBuildRGBA_Shape(t *testing.T) {
	buf := BuildRGBA(quadGrid(), quadParams(), testPal, 8, false)
	if len(buf) != 8*8*4 {
		t.Fatalf("buffer length = %d, want %d", len(buf), 8*8*4)
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0xFF {
			t.Fatalf("alpha at byte %d = %d, want 255", i, buf[i])
		}
	}
}

func TestBuildRGBA_NearestNeighborQuadrants(t *testing.T) {
	grid := quadGrid()
	p := quadParams()
	buf := BuildRGBA(grid, p, testPal, 8, false)

	// Each 4×4 quadrant of the 8×8 output samples one grid cell.
	quads := []struct {
		x, y   int
		gx, gy int
	}{
		{0, 0, 0, 0}, {7, 0, 1, 0}, {0, 7, 0, 1}, {7, 7, 1, 1},
		{3, 3, 0, 0}, {4, 4, 1, 1},
	}
	for _, q := range quads {
		want := ColorFor(grid[q.gy][q.gx], p.MaxIterations, testPal, p.ColorOffset)
		i := (q.y*8 + q.x) * 4
		got := palette.RGB{R: buf[i], G: buf[i+1], B: buf[i+2]}
		if got != want {
			t.Errorf("pixel (%d,%d) = %v, want grid cell (%d,%d) color %v", q.x, q.y, got, q.gx, q.gy, want)
		}
	}
}

func TestBuildRGBA_CircularMask(t *testing.T) {
	size := 16
	buf := BuildRGBA(quadGrid(), quadParams(), testPal, size, true)

	corner := 0 // pixel (0,0)
	for ch := 0; ch < 4; ch++ {
		if buf[corner+ch] != 0 {
			t.Errorf("corner channel %d = %d, want 0", ch, buf[corner+ch])
		}
	}

	center := ((size/2)*size + size/2) * 4
	if buf[center+3] != 0xFF {
		t.Error("center pixel was masked out")
	}

	// Unmasked render differs from the masked one.
	plain := BuildRGBA(quadGrid(), quadParams(), testPal, size, false)
	if plain[corner+3] != 0xFF {
		t.Error("unmasked corner should be opaque")
	}
}

func TestImage_WrapsBuffer(t *testing.T) {
	buf := BuildRGBA(quadGrid(), quadParams(), testPal, 8, false)
	img := Image(buf, 8)

	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("image bounds = %v, want 8×8", img.Bounds())
	}

	r, g, b, a := img.At(5, 6).RGBA()
	i := (6*8 + 5) * 4
	want := [4]uint8{buf[i], buf[i+1], buf[i+2], buf[i+3]}
	got := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	if got != want {
		t.Errorf("At(5,6) = %v, want %v", got, want)
	}
}
