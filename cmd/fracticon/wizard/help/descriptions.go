package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"input": {
		Title:       "INPUT",
		Description: "Text the avatar is derived from.",
		Details: `The same input always produces the same avatar.
Usernames, email addresses and UUIDs all work well.
Hex strings of 16+ characters are treated as a ready-made digest.`,
	},
	"output": {
		Title:       "OUTPUT FILE",
		Description: "Path of the image file to write.",
		Details:     "The file extension is not inspected; the format field below decides between PNG and SVG.",
	},
	"format": {
		Title:       "FORMAT",
		Description: "Output image format.",
		Details: `PNG - raster image, works everywhere
SVG - vector markup, scales to any size and stays small`,
	},
	"size": {
		Title:       "IMAGE SIZE",
		Description: "Width and height of the avatar in pixels.",
		Details:     "Avatars are square. The fractal grid is scaled up to this size with hard pixel edges, so any size stays sharp.",
	},
	"grid": {
		Title:       "GRID SIZE",
		Description: "Resolution of the underlying fractal grid.",
		Details:     "Higher values reveal finer fractal detail. 64 is plenty for avatar sizes; the grid never needs to exceed the image size.",
	},
	"family": {
		Title:       "FRACTAL FAMILY",
		Description: "Escape-time iteration that shapes the avatar.",
		Details: `julia - classic Julia sets, the richest variety
mandelbrot - views into the Mandelbrot set
burning-ship - folded variant with flame-like structures
tricorn - conjugated variant with three-fold symmetry`,
	},
	"preset": {
		Title:       "PRESET",
		Description: "Named constant to use instead of a seeded one.",
		Details: `Presets pin the fractal shape, so different inputs share
a silhouette but keep their own palette and framing.
Leave on "seeded from input" for fully unique avatars.`,
	},
	"constant": {
		Title:       "CONSTANT",
		Description: "Explicit complex constant as re,im.",
		Details: `Example: -0.8,0.156
Overrides both the preset and the seeded choice.
Leave empty to let the input decide.`,
	},
	"palette": {
		Title:       "PALETTE",
		Description: "Colour scheme for the escape bands.",
		Details: `random derives hues from the input itself.
The named styles (fire, ocean, forest, ...) are fixed ramps
whose shading still varies per input.`,
	},
	"colors": {
		Title:       "PALETTE COLORS",
		Description: "Number of colours in the palette ramp.",
		Details:     "More colours give smoother gradients between escape bands. 3 to 8 is the useful range.",
	},
	"circular": {
		Title:       "CIRCULAR MASK",
		Description: "Clip the avatar to a circle.",
		Details:     "Pixels outside the inscribed circle become transparent, matching round avatar slots in most UIs.",
	},
	"action": {
		Title:       "ACTION",
		Description: "What to do with this configuration.",
		Details: `Generate writes the avatar to the output file.
Save stores the configuration as YAML for later -config runs.`,
	},
}
