// Package wizard provides an interactive TUI for configuring avatar generation.
package wizard

import "github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"

// DefaultJob returns the starting configuration for a fresh wizard run.
func DefaultJob() *types.JobConfig {
	return &types.JobConfig{
		Output:    "avatar.png",
		Format:    "png",
		Size:      128,
		GridSize:  64,
		Family:    "julia",
		Palette:   "random",
		NumColors: 5,
	}
}
