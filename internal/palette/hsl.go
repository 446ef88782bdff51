package palette

import "math"

// HSLToRGB converts hue/saturation/lightness to RGB with the standard
// piecewise formula. Hue wraps modulo 1, so callers can pass
// accumulated hue sums directly; channels round to the nearest integer
// in [0,255].
func HSLToRGB(h, s, l float64) RGB {
	h = h - math.Floor(h)

	c := (1 - math.Abs(2*l-1)) * s
	sector := h * 6
	x := c * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{channel(r + m), channel(g + m), channel(b + m)}
}

// channel rounds a [0,1] value to an 8-bit channel, clamping float
// noise at the edges.
func channel(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
