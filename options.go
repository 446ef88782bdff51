package fracticon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrsinham/fracticon/internal/fractal"
	"github.com/mrsinham/fracticon/internal/palette"
)

// Option validation errors. Wrapped values carry the offending input;
// match with errors.Is.
var (
	ErrUnknownFamily = errors.New("unknown fractal family")
	ErrUnknownPreset = errors.New("unknown preset")
	ErrBadSize       = errors.New("output size must be positive")
	ErrBadGridSize   = errors.New("grid size must be positive")
	ErrInvalidHex    = errors.New("invalid hex digest")
)

// Defaults applied to zero-valued option fields.
const (
	DefaultSize      = 128
	DefaultGridSize  = 64
	DefaultFamily    = "julia"
	DefaultPalette   = "random"
	DefaultNumColors = 5
)

// Constant is an explicit complex constant for the fractal iteration.
type Constant struct {
	Re, Im float64
}

// Color is one palette entry.
type Color struct {
	R, G, B uint8
}

// Options controls a generation. The zero value (and a nil pointer)
// mean: 128px output from a 64×64 grid, no circular mask, julia
// family, procedural palette with five colors.
type Options struct {
	// Size is the output image side length in pixels.
	Size int
	// GridSize is the iteration grid resolution the image is scaled
	// up from.
	GridSize int
	// Circular masks everything outside the inscribed circle to
	// transparent.
	Circular bool
	// Family picks the fractal family: julia, mandelbrot,
	// burning-ship or tricorn.
	Family string
	// Preset names a curated constant and skips the quality filter.
	Preset string
	// Constant fixes the complex constant directly; it takes
	// precedence over Preset.
	Constant *Constant
	// Palette is a named style or "random" for a procedural ramp.
	Palette string
	// NumColors is the procedural ramp length; named styles keep
	// their fixed tables.
	NumColors int
}

// withDefaults copies o with zero fields replaced by the defaults. A
// nil receiver yields the full default set.
func (o *Options) withDefaults() Options {
	opts := Options{
		Size:      DefaultSize,
		GridSize:  DefaultGridSize,
		Family:    DefaultFamily,
		Palette:   DefaultPalette,
		NumColors: DefaultNumColors,
	}
	if o == nil {
		return opts
	}
	if o.Size != 0 {
		opts.Size = o.Size
	}
	if o.GridSize != 0 {
		opts.GridSize = o.GridSize
	}
	opts.Circular = o.Circular
	if o.Family != "" {
		opts.Family = o.Family
	}
	opts.Preset = o.Preset
	opts.Constant = o.Constant
	if o.Palette != "" {
		opts.Palette = o.Palette
	}
	if o.NumColors > 0 {
		opts.NumColors = o.NumColors
	}
	return opts
}

// validate runs after defaulting, so only explicitly bad values fail.
func (o Options) validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSize, o.Size)
	}
	if o.GridSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadGridSize, o.GridSize)
	}
	if _, err := fractal.ParseFamily(o.Family); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, o.Family)
	}
	if o.Preset != "" {
		if _, ok := fractal.LookupPreset(o.Preset); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, o.Preset)
		}
	}
	return nil
}

// ParseConstant parses a "re,im" pair, the format the CLI flag and
// the server query parameter share.
func ParseConstant(s string) (Constant, error) {
	reStr, imStr, ok := strings.Cut(s, ",")
	if !ok {
		return Constant{}, fmt.Errorf("invalid constant %q (want \"re,im\", e.g. \"-0.8,0.156\")", s)
	}
	re, errRe := strconv.ParseFloat(strings.TrimSpace(reStr), 64)
	im, errIm := strconv.ParseFloat(strings.TrimSpace(imStr), 64)
	if errRe != nil || errIm != nil {
		return Constant{}, fmt.Errorf("invalid constant %q (want \"re,im\", e.g. \"-0.8,0.156\")", s)
	}
	return Constant{Re: re, Im: im}, nil
}

// Families lists the supported fractal family names.
func Families() []string {
	return fractal.FamilyNames()
}

// Presets lists the supported preset names.
func Presets() []string {
	return fractal.PresetNames()
}

// PaletteStyles lists the supported palette style names.
func PaletteStyles() []string {
	return palette.StyleNames()
}
