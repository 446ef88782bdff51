// Package palette builds the color ramps that iteration counts are
// mapped through. Nine named presets cover common looks; everything
// else falls through to a procedural golden-angle ramp. All color
// tables are fixed: identical PRNG state and style always reproduce
// the same palette.
package palette

import (
	"slices"
	"strings"

	"github.com/mrsinham/fracticon/internal/xrand"
)

// RGB is one opaque color.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered color ramp plus a background color. The ramp
// colors escape-time values; the background fills whatever the fractal
// does not (SVG canvas, sheet matting).
type Palette struct {
	Colors     []RGB
	Background RGB
}

const (
	// goldenAngle is the hue advance between consecutive procedural
	// entries. Irrational stepping keeps neighbors distinct at any
	// palette length.
	goldenAngle = 0.6180339887

	// DefaultColors is the procedural ramp length when the caller
	// passes a non-positive count.
	DefaultColors = 5

	bgSaturation = 0.15
	bgLightDark  = 0.12
	bgLightLight = 0.9
)

// fixedPreset is a preset with a hard-coded ramp and background pair.
type fixedPreset struct {
	colors []RGB
	dark   RGB
	light  RGB
}

var fixedPresets = map[string]fixedPreset{
	"fire": {
		colors: []RGB{{128, 0, 0}, {192, 32, 0}, {255, 69, 0}, {255, 140, 0}, {255, 215, 0}},
		dark:   RGB{26, 8, 8},
		light:  RGB{255, 244, 230},
	},
	"ocean": {
		colors: []RGB{{0, 32, 96}, {0, 64, 128}, {0, 105, 148}, {64, 160, 180}, {144, 224, 239}},
		dark:   RGB{6, 12, 24},
		light:  RGB{230, 245, 255},
	},
	"forest": {
		colors: []RGB{{16, 64, 16}, {34, 102, 34}, {60, 140, 60}, {120, 180, 90}, {200, 230, 150}},
		dark:   RGB{8, 16, 8},
		light:  RGB{240, 250, 235},
	},
	"sunset": {
		colors: []RGB{{75, 0, 110}, {170, 40, 110}, {230, 90, 90}, {250, 150, 80}, {255, 210, 120}},
		dark:   RGB{20, 8, 28},
		light:  RGB{255, 240, 225},
	},
	"neon": {
		colors: []RGB{{255, 0, 255}, {0, 255, 255}, {57, 255, 20}, {255, 255, 0}, {255, 20, 147}},
		dark:   RGB{10, 10, 14},
		light:  RGB{245, 245, 250},
	},
	"grayscale": {
		colors: []RGB{{40, 40, 40}, {90, 90, 90}, {140, 140, 140}, {190, 190, 190}, {235, 235, 235}},
		dark:   RGB{12, 12, 12},
		light:  RGB{248, 248, 248},
	},
	"rainbow": {
		colors: []RGB{{255, 0, 0}, {255, 127, 0}, {255, 255, 0}, {0, 255, 0}, {0, 0, 255}},
		dark:   RGB{14, 14, 14},
		light:  RGB{250, 250, 250},
	},
}

// rampStep is one entry of a hue-parameterized preset: a hue offset
// from the drawn base plus fixed saturation and lightness.
type rampStep struct {
	dh, s, l float64
}

var (
	pastelRamp = []rampStep{
		{0.00, 0.55, 0.80}, {0.15, 0.55, 0.80}, {0.30, 0.55, 0.80},
		{0.45, 0.55, 0.80}, {0.60, 0.55, 0.80},
	}
	monochromeRamp = []rampStep{
		{0, 0.60, 0.25}, {0, 0.60, 0.40}, {0, 0.60, 0.55},
		{0, 0.60, 0.70}, {0, 0.60, 0.85},
	}
)

// StyleNames lists the accepted palette styles, the procedural default
// first.
func StyleNames() []string {
	return []string{
		"random", "fire", "ocean", "forest", "sunset",
		"neon", "pastel", "monochrome", "grayscale", "rainbow",
	}
}

// Generate draws a palette from r. Named presets consume exactly one
// background draw (plus one base-hue draw for pastel and monochrome);
// any other style, "random" included, takes the procedural path with
// numColors entries. A non-positive numColors falls back to
// DefaultColors.
func Generate(r *xrand.Rand, style string, numColors int) Palette {
	if numColors <= 0 {
		numColors = DefaultColors
	}

	style = strings.ToLower(style)
	if fixed, ok := fixedPresets[style]; ok {
		bg := fixed.light
		if r.Bool(0.5) {
			bg = fixed.dark
		}
		return Palette{Colors: slices.Clone(fixed.colors), Background: bg}
	}

	switch style {
	case "pastel":
		return hueRamp(r, pastelRamp)
	case "monochrome":
		return hueRamp(r, monochromeRamp)
	}
	return procedural(r, numColors)
}

// hueRamp realizes a hue-parameterized preset: one base-hue draw, one
// background draw, then the fixed schedule.
func hueRamp(r *xrand.Rand, ramp []rampStep) Palette {
	base := r.Float()
	dark := r.Bool(0.5)

	colors := make([]RGB, len(ramp))
	for i, st := range ramp {
		colors[i] = HSLToRGB(base+st.dh, st.s, st.l)
	}
	return Palette{Colors: colors, Background: hueBackground(base, dark)}
}

// procedural draws base hue, saturation and a lightness band, then
// steps the hue by the golden angle per entry while lightness climbs
// linearly across the band.
func procedural(r *xrand.Rand, numColors int) Palette {
	hue := r.Float()
	sat := r.Range(0.4, 0.9)
	lightLow := r.Range(0.3, 0.4)
	lightHigh := r.Range(0.6, 0.8)
	dark := r.Bool(0.5)

	colors := make([]RGB, numColors)
	for i := range colors {
		t := 0.0
		if numColors > 1 {
			t = float64(i) / float64(numColors-1)
		}
		l := lightLow + (lightHigh-lightLow)*t
		colors[i] = HSLToRGB(hue+float64(i)*goldenAngle, sat, l)
	}
	return Palette{Colors: colors, Background: hueBackground(hue, dark)}
}

// hueBackground desaturates the base hue into a near-black or
// near-white canvas color.
func hueBackground(hue float64, dark bool) RGB {
	if dark {
		return HSLToRGB(hue, bgSaturation, bgLightDark)
	}
	return HSLToRGB(hue, bgSaturation, bgLightLight)
}
