// Package svg renders iteration grids as standalone SVG documents,
// the vector twin of the PNG path.
package svg

import (
	"bytes"
	"fmt"

	"github.com/mrsinham/fracticon/internal/fractal"
	"github.com/mrsinham/fracticon/internal/palette"
	"github.com/mrsinham/fracticon/internal/render"
)

// Render draws grid as an SVG document of size×size user units: a
// background rect in the palette background color, then one rect per
// grid cell colored exactly like the PNG path. With circular set the
// whole drawing is clipped to the inscribed circle. Output bytes are
// deterministic for identical inputs.
func Render(grid fractal.Grid, p fractal.Params, pal palette.Palette, size int, circular bool) []byte {
	gridSize := grid.Size()
	cell := float64(size) / float64(gridSize)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		size, size, size, size)
	if circular {
		half := float64(size) / 2
		fmt.Fprintf(&buf, `<defs><clipPath id="mask"><circle cx="%g" cy="%g" r="%g"/></clipPath></defs>`+"\n",
			half, half, half)
		buf.WriteString(`<g clip-path="url(#mask)">` + "\n")
	}
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="%s"/>`+"\n", size, size, hexColor(pal.Background))

	for y, row := range grid {
		for x, v := range row {
			c := render.ColorFor(v, p.MaxIterations, pal, p.ColorOffset)
			fmt.Fprintf(&buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
				float64(x)*cell, float64(y)*cell, cell, cell, hexColor(c))
		}
	}

	if circular {
		buf.WriteString("</g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func hexColor(c palette.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
