// Package types holds the wizard's shared configuration structs.
package types

// JobConfig describes one avatar to render: what it is derived from,
// where it goes, and how it should look. Numeric fields left at zero
// fall back to the library defaults.
type JobConfig struct {
	Input     string
	Output    string
	Format    string // "png" or "svg"
	Size      int
	GridSize  int
	Circular  bool
	Family    string
	Preset    string // empty means the constant is drawn from the input
	Constant  string // "re,im", overrides preset and seeded choice
	Palette   string
	NumColors int
}
