package fracticon

import "encoding/hex"

// Metadata reports what the pipeline chose for one generation, for
// debugging and for callers that label their avatars.
type Metadata struct {
	// Digest is the hex form of the bytes that seeded the PRNG.
	Digest string `json:"digest" yaml:"digest"`

	Family      string   `json:"family" yaml:"family"`
	Constant    Constant `json:"constant" yaml:"constant"`
	Zoom        float64  `json:"zoom" yaml:"zoom"`
	MaxIter     int      `json:"maxIterations" yaml:"maxIterations"`
	ColorOffset float64  `json:"colorOffset" yaml:"colorOffset"`

	PaletteStyle string  `json:"paletteStyle" yaml:"paletteStyle"`
	Colors       []Color `json:"colors" yaml:"colors"`
	Background   Color   `json:"background" yaml:"background"`

	Size     int  `json:"size" yaml:"size"`
	GridSize int  `json:"gridSize" yaml:"gridSize"`
	Circular bool `json:"circular" yaml:"circular"`
}

func (p *pipeline) metadata() *Metadata {
	colors := make([]Color, len(p.pal.Colors))
	for i, c := range p.pal.Colors {
		colors[i] = Color(c)
	}

	return &Metadata{
		Digest:       hex.EncodeToString(p.data),
		Family:       p.params.Family.String(),
		Constant:     Constant{Re: p.params.CRe, Im: p.params.CIm},
		Zoom:         p.params.Zoom,
		MaxIter:      p.params.MaxIterations,
		ColorOffset:  p.params.ColorOffset,
		PaletteStyle: p.opts.Palette,
		Colors:       colors,
		Background:   Color(p.pal.Background),
		Size:         p.opts.Size,
		GridSize:     p.opts.GridSize,
		Circular:     p.opts.Circular,
	}
}
