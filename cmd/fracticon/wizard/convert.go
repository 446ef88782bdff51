package wizard

import (
	"fmt"

	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

// ToOptions converts a wizard job to generation options.
func ToOptions(job *types.JobConfig) (*fracticon.Options, error) {
	opts := &fracticon.Options{
		Size:      job.Size,
		GridSize:  job.GridSize,
		Circular:  job.Circular,
		Family:    job.Family,
		Preset:    job.Preset,
		Palette:   job.Palette,
		NumColors: job.NumColors,
	}

	if job.Constant != "" {
		c, err := fracticon.ParseConstant(job.Constant)
		if err != nil {
			return nil, err
		}
		opts.Constant = &c
	}

	return opts, nil
}

// FromOptions creates a wizard job from generation options.
// Used for -save-config to export CLI flags as YAML.
func FromOptions(input, output, format string, opts *fracticon.Options) *types.JobConfig {
	job := &types.JobConfig{
		Input:  input,
		Output: output,
		Format: format,
	}

	if opts == nil {
		return job
	}

	job.Size = opts.Size
	job.GridSize = opts.GridSize
	job.Circular = opts.Circular
	job.Family = opts.Family
	job.Preset = opts.Preset
	job.Palette = opts.Palette
	job.NumColors = opts.NumColors

	if opts.Constant != nil {
		job.Constant = fmt.Sprintf("%g,%g", opts.Constant.Re, opts.Constant.Im)
	}

	return job
}
