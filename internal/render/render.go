// Package render maps iteration grids through palettes into RGBA
// pixel buffers sized for output.
package render

import (
	"image"
	"math"

	"github.com/mrsinham/fracticon/internal/fractal"
	"github.com/mrsinham/fracticon/internal/palette"
)

// ColorFor maps one escape count to a palette color. Cells that
// reached the iteration cap are in-set and render pure black; all
// others pick the ramp position frac(iter/maxIter + offset) and
// interpolate the two bracketing entries, clamping the upper index to
// the last entry.
func ColorFor(iter, maxIter int, pal palette.Palette, offset float64) palette.RGB {
	if iter == maxIter || len(pal.Colors) == 0 {
		return palette.RGB{}
	}

	t := float64(iter)/float64(maxIter) + offset
	t -= math.Floor(t)

	pos := t * float64(len(pal.Colors)-1)
	lo := int(pos)
	hi := lo + 1
	if hi > len(pal.Colors)-1 {
		hi = len(pal.Colors) - 1
	}
	f := pos - float64(lo)

	a, b := pal.Colors[lo], pal.Colors[hi]
	return palette.RGB{
		R: lerp(a.R, b.R, f),
		G: lerp(a.G, b.G, f),
		B: lerp(a.B, b.B, f),
	}
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// BuildRGBA scales grid up to outSize×outSize with nearest-neighbor
// sampling and colors every pixel, returning a tightly packed RGBA
// buffer. With circular set, any pixel whose center lies outside the
// inscribed circle is zeroed on all four channels.
func BuildRGBA(grid fractal.Grid, p fractal.Params, pal palette.Palette, outSize int, circular bool) []byte {
	gridSize := grid.Size()
	buf := make([]byte, outSize*outSize*4)

	for y := 0; y < outSize; y++ {
		gy := y * gridSize / outSize
		for x := 0; x < outSize; x++ {
			gx := x * gridSize / outSize
			c := ColorFor(grid[gy][gx], p.MaxIterations, pal, p.ColorOffset)
			i := (y*outSize + x) * 4
			buf[i] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = 0xFF
		}
	}

	if circular {
		applyCircularMask(buf, outSize)
	}
	return buf
}

// applyCircularMask zeroes pixels outside the inscribed circle. The
// test compares the doubled, offset pixel center against the diameter
// so it stays in integer arithmetic.
func applyCircularMask(buf []byte, size int) {
	for y := 0; y < size; y++ {
		dy := 2*y + 1 - size
		for x := 0; x < size; x++ {
			dx := 2*x + 1 - size
			if dx*dx+dy*dy > size*size {
				i := (y*size + x) * 4
				buf[i], buf[i+1], buf[i+2], buf[i+3] = 0, 0, 0, 0
			}
		}
	}
}

// Image wraps an RGBA buffer from BuildRGBA without copying.
func Image(rgba []byte, size int) *image.RGBA {
	return &image.RGBA{
		Pix:    rgba,
		Stride: size * 4,
		Rect:   image.Rect(0, 0, size, size),
	}
}
