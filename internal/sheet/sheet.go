// Package sheet composes a batch of avatars into one labeled contact
// sheet, for eyeballing how families and palettes vary across inputs.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/internal/pngenc"
)

const (
	padding     = 8
	labelHeight = 18
)

var (
	sheetBackground = color.RGBA{R: 24, G: 24, B: 26, A: 255}
	labelColor      = color.RGBA{R: 210, G: 210, B: 210, A: 255}
)

// Render generates one avatar per input and lays them out left to
// right, top to bottom, cols per row, each tile labeled with its
// input string. cols <= 0 picks a near-square layout. The result is
// PNG bytes.
func Render(inputs []string, o *fracticon.Options, cols int) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs to lay out")
	}
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(len(inputs)))))
	}
	if cols > len(inputs) {
		cols = len(inputs)
	}

	size := fracticon.DefaultSize
	if o != nil && o.Size > 0 {
		size = o.Size
	}

	cellW := size + 2*padding
	cellH := size + labelHeight + 2*padding
	rows := (len(inputs) + cols - 1) / cols
	width := cols * cellW
	height := rows * cellH

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i, input := range inputs {
		tile, err := fracticon.GenerateImage(input, o)
		if err != nil {
			return nil, fmt.Errorf("avatar %q: %w", input, err)
		}

		x0 := (i % cols) * cellW
		y0 := (i / cols) * cellH
		draw.Draw(dst, image.Rect(x0+padding, y0+padding, x0+padding+size, y0+padding+size),
			tile, image.Point{}, draw.Over)

		label := fitLabel(face, input, size)
		lx := x0 + padding + (size-font.MeasureString(face, label).Ceil())/2
		ly := y0 + padding + size + 2 + face.Metrics().Ascent.Ceil()
		drawer := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(labelColor),
			Face: face,
			Dot:  fixed.P(lx, ly),
		}
		drawer.DrawString(label)
	}

	return pngenc.Encode(width, height, dst.Pix), nil
}

// fitLabel shortens text until it fits maxWidth, marking the cut with
// an ellipsis.
func fitLabel(face font.Face, text string, maxWidth int) string {
	if font.MeasureString(face, text).Ceil() <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		short := string(runes) + "..."
		if font.MeasureString(face, short).Ceil() <= maxWidth {
			return short
		}
	}
	return ""
}
