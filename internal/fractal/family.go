// Package fractal turns PRNG draws into fractal parameters and
// rasterizes them into iteration grids. The four families are a closed
// set, each carrying its own escape-time kernel as a pure function;
// parameter generation layers a quality filter on top so that random
// constants still produce visually busy grids.
package fractal

import (
	"fmt"
	"math"
	"strings"
)

// Family identifies one of the four supported fractal families.
type Family int

const (
	Julia Family = iota
	Mandelbrot
	BurningShip
	Tricorn
)

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	switch f {
	case Mandelbrot:
		return "mandelbrot"
	case BurningShip:
		return "burning-ship"
	case Tricorn:
		return "tricorn"
	default:
		return "julia"
	}
}

// ParseFamily parses a family name.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "julia":
		return Julia, nil
	case "mandelbrot":
		return Mandelbrot, nil
	case "burning-ship", "burningship":
		return BurningShip, nil
	case "tricorn":
		return Tricorn, nil
	default:
		return Julia, fmt.Errorf("invalid family: %s (valid: julia, mandelbrot, burning-ship, tricorn)", s)
	}
}

// FamilyNames lists the canonical family names in display order.
func FamilyNames() []string {
	return []string{"julia", "mandelbrot", "burning-ship", "tricorn"}
}

// escapeFunc computes the escape iteration for one plane point. The
// bailout |z|² > 4 is tested before every update; the return value is
// the index of the first failing test, or maxIter when z never
// escapes within the cap.
type escapeFunc func(px, py, cre, cim float64, maxIter int) int

// kernel returns the family's escape function.
func (f Family) kernel() escapeFunc {
	switch f {
	case Mandelbrot:
		return mandelbrotEscape
	case BurningShip:
		return burningShipEscape
	case Tricorn:
		return tricornEscape
	default:
		return juliaEscape
	}
}

// juliaEscape iterates z ← z² + c from z0 = (px, py) with the fixed
// constant c = (cre, cim).
func juliaEscape(px, py, cre, cim float64, maxIter int) int {
	zx, zy := px, py
	for i := 0; i < maxIter; i++ {
		if zx*zx+zy*zy > 4 {
			return i
		}
		zx, zy = zx*zx-zy*zy+cre, 2*zx*zy+cim
	}
	return maxIter
}

// mandelbrotEscape iterates z ← z² + c from z0 = 0 with the per-pixel
// constant c = (px+cre, py+cim); cre/cim act as a regional offset.
func mandelbrotEscape(px, py, cre, cim float64, maxIter int) int {
	cx, cy := px+cre, py+cim
	var zx, zy float64
	for i := 0; i < maxIter; i++ {
		if zx*zx+zy*zy > 4 {
			return i
		}
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return maxIter
}

// burningShipEscape is the mandelbrot kernel with the imaginary update
// term folded to |2·zx·zy|, which breaks the set's symmetry into the
// characteristic ship silhouette.
func burningShipEscape(px, py, cre, cim float64, maxIter int) int {
	cx, cy := px+cre, py+cim
	var zx, zy float64
	for i := 0; i < maxIter; i++ {
		if zx*zx+zy*zy > 4 {
			return i
		}
		zx, zy = zx*zx-zy*zy+cx, math.Abs(2*zx*zy)+cy
	}
	return maxIter
}

// tricornEscape is the mandelbrot kernel over the conjugate, so the
// imaginary update term is −2·zx·zy.
func tricornEscape(px, py, cre, cim float64, maxIter int) int {
	cx, cy := px+cre, py+cim
	var zx, zy float64
	for i := 0; i < maxIter; i++ {
		if zx*zx+zy*zy > 4 {
			return i
		}
		zx, zy = zx*zx-zy*zy+cx, -2*zx*zy+cy
	}
	return maxIter
}
