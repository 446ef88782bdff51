package fractal

// Constant is a point in the complex plane.
type Constant struct {
	Re, Im float64
}

// Preset is a curated constant with the family it was catalogued for.
type Preset struct {
	Name     string
	Family   Family
	Constant Constant
}

// Classic Julia constants. The candidate generator perturbs these, so
// the table order is part of the deterministic draw sequence and must
// not be reordered.
var juliaPresets = []Preset{
	{"rabbit", Julia, Constant{-0.123, 0.745}},        // Douady rabbit
	{"basilica", Julia, Constant{-1.0, 0.0}},          // period-2 bulb
	{"san-marco", Julia, Constant{-0.75, 0.0}},        // parabolic pinch
	{"siegel-disk", Julia, Constant{-0.390541, -0.586788}},
	{"spiral", Julia, Constant{-0.7269, 0.1889}},
	{"galaxy", Julia, Constant{0.285, 0.01}},
	{"frost", Julia, Constant{-0.4, 0.6}},
	{"dragon", Julia, Constant{-0.835, -0.2321}},
	{"dendrite", Julia, Constant{0.0, 1.0}},
	{"airplane", Julia, Constant{-1.755, 0.0}},
}

// Mandelbrot-plane landmarks, stored as the regional offsets the
// non-Julia kernels add to each pixel.
var regionPresets = []Preset{
	{"seahorse-valley", Mandelbrot, Constant{-0.75, 0.1}},
	{"elephant-valley", Mandelbrot, Constant{-1.80, -0.06}},
	{"triple-spiral", Mandelbrot, Constant{-0.7465, 0.0965}},
}

// LookupPreset resolves a preset by name across both tables.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range juliaPresets {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range regionPresets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns every preset name in table order, Julia
// constants first.
func PresetNames() []string {
	names := make([]string, 0, len(juliaPresets)+len(regionPresets))
	for _, p := range juliaPresets {
		names = append(names, p.Name)
	}
	for _, p := range regionPresets {
		names = append(names, p.Name)
	}
	return names
}
