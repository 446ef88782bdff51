package tests

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"strings"
	"testing"

	"github.com/mrsinham/fracticon"
)

// TestValidation_PNGStructure verifies the raw chunk layout of the
// generated file: signature, IHDR fields, zlib header and IEND trailer
func TestValidation_PNGStructure(t *testing.T) {
	data, err := fracticon.Generate("ada", &fracticon.Options{Size: 64, GridSize: 32})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// PNG signature
	sig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if !bytes.Equal(data[:8], sig) {
		t.Fatalf("Bad PNG signature: % X", data[:8])
	}
	t.Logf("✓ PNG signature present")

	// IHDR directly after the signature
	if binary.BigEndian.Uint32(data[8:12]) != 13 {
		t.Errorf("IHDR length = %d, want 13", binary.BigEndian.Uint32(data[8:12]))
	}
	if string(data[12:16]) != "IHDR" {
		t.Fatalf("First chunk is %q, want IHDR", data[12:16])
	}

	width := binary.BigEndian.Uint32(data[16:20])
	height := binary.BigEndian.Uint32(data[20:24])
	if width != 64 || height != 64 {
		t.Errorf("IHDR dimensions %dx%d, want 64x64", width, height)
	}
	if data[24] != 8 {
		t.Errorf("Bit depth = %d, want 8", data[24])
	}
	if data[25] != 6 {
		t.Errorf("Color type = %d, want 6 (RGBA)", data[25])
	}
	if data[26] != 0 || data[27] != 0 || data[28] != 0 {
		t.Errorf("Compression/filter/interlace = %d/%d/%d, want 0/0/0",
			data[26], data[27], data[28])
	}
	t.Logf("✓ IHDR: %dx%d, 8-bit RGBA", width, height)

	// IDAT follows IHDR; its payload opens with the zlib header for
	// deflate with no preset dictionary
	idatOffset := 8 + 4 + 4 + 13 + 4
	if string(data[idatOffset+4:idatOffset+8]) != "IDAT" {
		t.Fatalf("Second chunk is %q, want IDAT", data[idatOffset+4:idatOffset+8])
	}
	if data[idatOffset+8] != 0x78 || data[idatOffset+9] != 0x01 {
		t.Errorf("zlib header = %02X %02X, want 78 01", data[idatOffset+8], data[idatOffset+9])
	}
	t.Logf("✓ IDAT with 78 01 zlib header")

	// IEND trailer: zero length, type, fixed CRC
	trailer := data[len(data)-12:]
	if binary.BigEndian.Uint32(trailer[:4]) != 0 {
		t.Errorf("IEND length should be 0")
	}
	if string(trailer[4:8]) != "IEND" {
		t.Errorf("Last chunk is %q, want IEND", trailer[4:8])
	}
	if binary.BigEndian.Uint32(trailer[8:]) != 0xAE426082 {
		t.Errorf("IEND CRC = %08X, want AE426082", binary.BigEndian.Uint32(trailer[8:]))
	}
	t.Logf("✓ IEND trailer intact")
}

// TestValidation_MirrorSymmetry verifies the horizontal mirror: every
// pixel must equal its reflection across the vertical center line
func TestValidation_MirrorSymmetry(t *testing.T) {
	for _, family := range fracticon.Families() {
		t.Run(family, func(t *testing.T) {
			data, err := fracticon.Generate("symmetry probe "+family,
				&fracticon.Options{Size: 128, GridSize: 64, Family: family})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			size := img.Bounds().Dx()
			for y := 0; y < size; y += 7 {
				for x := 0; x < size/2; x += 3 {
					r1, g1, b1, a1 := img.At(x, y).RGBA()
					r2, g2, b2, a2 := img.At(size-1-x, y).RGBA()
					if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
						t.Fatalf("Pixel (%d,%d) differs from its mirror (%d,%d)",
							x, y, size-1-x, y)
					}
				}
			}
		})
	}
}

// TestValidation_SVGStructure verifies the SVG document shape: root
// element, background rect and one rect per grid cell
func TestValidation_SVGStructure(t *testing.T) {
	const gridSize = 16
	data, err := fracticon.GenerateSVG("ada", &fracticon.Options{Size: 128, GridSize: gridSize})
	if err != nil {
		t.Fatalf("GenerateSVG failed: %v", err)
	}
	doc := string(data)

	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("Missing svg root element: %.60s", doc)
	}
	if !strings.Contains(doc, `width="128" height="128"`) {
		t.Error("Missing width/height attributes")
	}
	if !strings.Contains(doc, `viewBox="0 0 128 128"`) {
		t.Error("Missing viewBox")
	}

	// One background rect plus one rect per cell
	rects := strings.Count(doc, "<rect ")
	want := 1 + gridSize*gridSize
	if rects != want {
		t.Errorf("Found %d rects, want %d", rects, want)
	}

	if strings.Contains(doc, "clipPath") {
		t.Error("Non-circular output should not carry a clip path")
	}

	// Circular variant clips the drawing group
	data, err = fracticon.GenerateSVG("ada", &fracticon.Options{Size: 128, GridSize: gridSize, Circular: true})
	if err != nil {
		t.Fatalf("GenerateSVG circular failed: %v", err)
	}
	doc = string(data)
	if !strings.Contains(doc, `<clipPath id="mask"><circle cx="64" cy="64" r="64"/></clipPath>`) {
		t.Error("Circular output should define the circle clip path")
	}
	if !strings.Contains(doc, `<g clip-path="url(#mask)">`) {
		t.Error("Circular output should clip the drawing group")
	}
}

// TestValidation_MetadataEchoesOptions verifies that reported metadata
// matches what the options requested
func TestValidation_MetadataEchoesOptions(t *testing.T) {
	opts := &fracticon.Options{
		Size:      96,
		GridSize:  48,
		Circular:  true,
		Family:    "tricorn",
		Palette:   "ocean",
		NumColors: 6,
	}

	_, md, err := fracticon.GenerateWithMetadata("ada", opts)
	if err != nil {
		t.Fatalf("GenerateWithMetadata failed: %v", err)
	}

	if md.Size != 96 || md.GridSize != 48 {
		t.Errorf("Metadata size %d/%d, want 96/48", md.Size, md.GridSize)
	}
	if !md.Circular {
		t.Error("Metadata should report circular")
	}
	if md.Family != "tricorn" {
		t.Errorf("Metadata family = %q, want tricorn", md.Family)
	}
	if md.PaletteStyle != "ocean" {
		t.Errorf("Metadata palette = %q, want ocean", md.PaletteStyle)
	}
	if len(md.Colors) == 0 {
		t.Error("Metadata colors should not be empty")
	}
}

// TestValidation_PresetPinsConstant verifies that a named preset fixes
// the complex constant while the family still comes from options
func TestValidation_PresetPinsConstant(t *testing.T) {
	_, md, err := fracticon.GenerateWithMetadata("ada", &fracticon.Options{Preset: "rabbit"})
	if err != nil {
		t.Fatalf("GenerateWithMetadata failed: %v", err)
	}

	if md.Constant.Re != -0.123 || md.Constant.Im != 0.745 {
		t.Errorf("rabbit constant = (%g,%g), want (-0.123,0.745)", md.Constant.Re, md.Constant.Im)
	}
	if md.Family != "julia" {
		t.Errorf("Family = %q, want julia (the default)", md.Family)
	}

	// A different input keeps the constant but may shift zoom and colors
	_, md2, err := fracticon.GenerateWithMetadata("grace", &fracticon.Options{Preset: "rabbit"})
	if err != nil {
		t.Fatalf("GenerateWithMetadata failed: %v", err)
	}
	if md2.Constant != md.Constant {
		t.Error("Preset constant should not vary across inputs")
	}
}

// TestValidation_ExplicitConstantWins verifies precedence: an explicit
// constant overrides a preset when both are set
func TestValidation_ExplicitConstantWins(t *testing.T) {
	c := fracticon.Constant{Re: -0.4, Im: 0.6}
	_, md, err := fracticon.GenerateWithMetadata("ada", &fracticon.Options{
		Preset:   "rabbit",
		Constant: &c,
	})
	if err != nil {
		t.Fatalf("GenerateWithMetadata failed: %v", err)
	}

	if md.Constant != c {
		t.Errorf("Constant = (%g,%g), want the explicit (-0.4,0.6)", md.Constant.Re, md.Constant.Im)
	}
}

// TestValidation_DefaultsApplied verifies nil options resolve to the
// documented defaults
func TestValidation_DefaultsApplied(t *testing.T) {
	_, md, err := fracticon.GenerateWithMetadata("ada", nil)
	if err != nil {
		t.Fatalf("GenerateWithMetadata failed: %v", err)
	}

	if md.Size != fracticon.DefaultSize {
		t.Errorf("Default size = %d, want %d", md.Size, fracticon.DefaultSize)
	}
	if md.GridSize != fracticon.DefaultGridSize {
		t.Errorf("Default grid = %d, want %d", md.GridSize, fracticon.DefaultGridSize)
	}
	if md.Family != fracticon.DefaultFamily {
		t.Errorf("Default family = %q, want %q", md.Family, fracticon.DefaultFamily)
	}
	if md.PaletteStyle != fracticon.DefaultPalette {
		t.Errorf("Default palette = %q, want %q", md.PaletteStyle, fracticon.DefaultPalette)
	}
	if md.Circular {
		t.Error("Circular should default to off")
	}
}
