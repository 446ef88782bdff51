package fractal

import (
	"fmt"
	"strings"

	"github.com/mrsinham/fracticon/internal/xrand"
)

// Candidate draw ranges.
const (
	zoomMin         = 1.5
	zoomMax         = 3.0
	baseIterations  = 50
	iterationSpread = 50
	juliaPerturb    = 0.08
	regionSpread    = 0.5
)

// Params fully describes one rendering.
type Params struct {
	Family        Family
	CRe, CIm      float64
	Zoom          float64
	MaxIterations int
	ColorOffset   float64
}

// GenOptions narrows parameter generation. Constant takes precedence
// over Preset; with neither set, constants are drawn through the
// quality filter.
type GenOptions struct {
	Family   Family
	Preset   string
	Constant *Constant
}

// GenerateParams draws rendering parameters from r. An explicit
// constant or a named preset fixes the complex constant and skips the
// quality filter; otherwise up to 10 candidates are drawn and probed
// on a small grid, accepting the first visually busy one and falling
// back to the last candidate when none passes.
//
// Zoom, iteration cap and color offset are drawn in the same order on
// every path, so downstream palette draws see one fixed stream
// position regardless of tier.
func GenerateParams(r *xrand.Rand, o GenOptions) (Params, error) {
	if o.Constant != nil {
		p := Params{Family: o.Family, CRe: o.Constant.Re, CIm: o.Constant.Im}
		drawTail(r, &p)
		return p, nil
	}

	if o.Preset != "" {
		pre, ok := LookupPreset(o.Preset)
		if !ok {
			return Params{}, fmt.Errorf("unknown preset: %s (valid: %s)", o.Preset, strings.Join(PresetNames(), ", "))
		}
		p := Params{Family: o.Family, CRe: pre.Constant.Re, CIm: pre.Constant.Im}
		drawTail(r, &p)
		return p, nil
	}

	var candidate Params
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate = drawCandidate(r, o.Family)
		probe := Rasterize(probeGridSize, candidate)
		if acceptable(probe, candidate.MaxIterations) {
			return candidate, nil
		}
	}
	// Nothing passed the filter; the last candidate still renders.
	return candidate, nil
}

// drawCandidate draws one filter candidate. Julia constants start from
// a preset and wander ±0.08 on each axis; the per-pixel families draw
// a regional offset from ±0.5 directly.
func drawCandidate(r *xrand.Rand, family Family) Params {
	var c Constant
	if family == Julia {
		base := xrand.Pick(r, juliaPresets)
		c.Re = base.Constant.Re + r.Range(-juliaPerturb, juliaPerturb)
		c.Im = base.Constant.Im + r.Range(-juliaPerturb, juliaPerturb)
	} else {
		c.Re = r.Range(-regionSpread, regionSpread)
		c.Im = r.Range(-regionSpread, regionSpread)
	}
	p := Params{Family: family, CRe: c.Re, CIm: c.Im}
	drawTail(r, &p)
	return p
}

// drawTail draws zoom, iteration cap and color offset, in that order.
func drawTail(r *xrand.Rand, p *Params) {
	p.Zoom = r.Range(zoomMin, zoomMax)
	p.MaxIterations = baseIterations + r.Int(0, iterationSpread)
	p.ColorOffset = r.Float()
}
