// Package fracticon generates deterministic fractal avatars. An input
// string is hashed with SHA-256, the digest seeds a xorshift128+ PRNG,
// and the PRNG drives fractal parameter and palette selection; the
// resulting escape-time grid is rendered to PNG or SVG bytes. The same
// input and options always produce the same bytes.
//
// Every call owns its PRNG, grid and buffers, so the package is safe
// for concurrent use.
package fracticon

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"

	"github.com/mrsinham/fracticon/internal/digest"
	"github.com/mrsinham/fracticon/internal/fractal"
	"github.com/mrsinham/fracticon/internal/palette"
	"github.com/mrsinham/fracticon/internal/pngenc"
	"github.com/mrsinham/fracticon/internal/render"
	"github.com/mrsinham/fracticon/internal/svg"
	"github.com/mrsinham/fracticon/internal/xrand"
)

// Generate renders input as a PNG avatar. An input that already looks
// like hex digest material (at least 16 characters, even length, hex
// digits only) is decoded and used as digest bytes directly; anything
// else is hashed as UTF-8 first.
func Generate(input string, o *Options) ([]byte, error) {
	p, err := run(inputBytes(input), o)
	if err != nil {
		return nil, err
	}
	return p.png(), nil
}

// FromHex renders a hex-encoded digest. Unlike Generate it never
// hashes: an odd length or a non-hex character fails with
// ErrInvalidHex regardless of length.
func FromHex(hexDigest string, o *Options) ([]byte, error) {
	b, err := hex.DecodeString(hexDigest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	p, err := run(b, o)
	if err != nil {
		return nil, err
	}
	return p.png(), nil
}

// FromBytes renders raw bytes, feeding them to seed derivation without
// hashing. Trailing bytes beyond the last full 4-byte chunk do not
// influence the output.
func FromBytes(b []byte, o *Options) ([]byte, error) {
	p, err := run(b, o)
	if err != nil {
		return nil, err
	}
	return p.png(), nil
}

// DataURL renders input as a base64 PNG data URL, ready for an <img>
// src attribute.
func DataURL(input string, o *Options) (string, error) {
	png, err := Generate(input, o)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// GenerateSVG renders input as an SVG avatar: one rect per grid cell
// over a palette background. Same pipeline and determinism as
// Generate, different output syntax.
func GenerateSVG(input string, o *Options) ([]byte, error) {
	p, err := run(inputBytes(input), o)
	if err != nil {
		return nil, err
	}
	return p.svg(), nil
}

// SVGDataURL renders input as a base64 SVG data URL.
func SVGDataURL(input string, o *Options) (string, error) {
	b, err := GenerateSVG(input, o)
	if err != nil {
		return "", err
	}
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// GenerateWithMetadata renders input as PNG and also reports the
// parameters the pipeline chose.
func GenerateWithMetadata(input string, o *Options) ([]byte, *Metadata, error) {
	p, err := run(inputBytes(input), o)
	if err != nil {
		return nil, nil, err
	}
	return p.png(), p.metadata(), nil
}

// GenerateImage renders input as an in-memory RGBA image instead of
// encoded bytes, for callers that compose avatars into larger images.
// The caller owns the returned image.
func GenerateImage(input string, o *Options) (*image.RGBA, error) {
	p, err := run(inputBytes(input), o)
	if err != nil {
		return nil, err
	}
	return p.image(), nil
}

// inputBytes decides between the pre-hashed and the hash-me input
// paths.
func inputBytes(input string) []byte {
	if isHexDigest(input) {
		b, err := hex.DecodeString(input)
		if err == nil {
			return b
		}
	}
	sum := digest.Sum([]byte(input))
	return sum[:]
}

// isHexDigest reports whether input passes the digest heuristic: at
// least 16 characters, even length, hex digits only.
func isHexDigest(s string) bool {
	if len(s) < 16 || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// pipeline holds one generation's inputs and intermediate products.
type pipeline struct {
	data   []byte
	opts   Options
	params fractal.Params
	pal    palette.Palette
	grid   fractal.Grid
}

// run executes the deterministic stages shared by every output format:
// seed derivation, parameter generation, palette generation (in that
// draw order, on one PRNG), then rasterization.
func run(data []byte, o *Options) (*pipeline, error) {
	opts := o.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	r := xrand.New(digest.Seeds(data))

	family, err := fractal.ParseFamily(opts.Family)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, opts.Family)
	}
	genOpts := fractal.GenOptions{Family: family, Preset: opts.Preset}
	if opts.Constant != nil {
		genOpts.Constant = &fractal.Constant{Re: opts.Constant.Re, Im: opts.Constant.Im}
	}

	params, err := fractal.GenerateParams(r, genOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, opts.Preset)
	}
	pal := palette.Generate(r, opts.Palette, opts.NumColors)
	grid := fractal.Rasterize(opts.GridSize, params)

	return &pipeline{data: data, opts: opts, params: params, pal: pal, grid: grid}, nil
}

func (p *pipeline) png() []byte {
	rgba := render.BuildRGBA(p.grid, p.params, p.pal, p.opts.Size, p.opts.Circular)
	return pngenc.Encode(p.opts.Size, p.opts.Size, rgba)
}

func (p *pipeline) svg() []byte {
	return svg.Render(p.grid, p.params, p.pal, p.opts.Size, p.opts.Circular)
}

func (p *pipeline) image() *image.RGBA {
	rgba := render.BuildRGBA(p.grid, p.params, p.pal, p.opts.Size, p.opts.Circular)
	return render.Image(rgba, p.opts.Size)
}
