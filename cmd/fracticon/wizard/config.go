package wizard

import (
	"fmt"
	"os"

	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
	"gopkg.in/yaml.v3"
)

// Config represents the complete wizard configuration for YAML serialization.
type Config struct {
	Avatar AvatarConfigYAML `yaml:"avatar"`
}

// AvatarConfigYAML holds the avatar settings with YAML tags for serialization.
type AvatarConfigYAML struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Format    string `yaml:"format"`
	Size      int    `yaml:"size"`
	GridSize  int    `yaml:"grid_size"`
	Circular  bool   `yaml:"circular"`
	Family    string `yaml:"family"`
	Preset    string `yaml:"preset,omitempty"`
	Constant  string `yaml:"constant,omitempty"`
	Palette   string `yaml:"palette"`
	NumColors int    `yaml:"num_colors"`
}

// LoadFromYAML reads a wizard configuration from a YAML file.
func LoadFromYAML(path string) (*types.JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return configToJob(&cfg), nil
}

// SaveToYAML writes a wizard configuration to a YAML file.
func SaveToYAML(job *types.JobConfig, path string) error {
	data, err := yaml.Marshal(jobToConfig(job))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// configToJob converts the YAML representation to a wizard job.
func configToJob(cfg *Config) *types.JobConfig {
	return &types.JobConfig{
		Input:     cfg.Avatar.Input,
		Output:    cfg.Avatar.Output,
		Format:    cfg.Avatar.Format,
		Size:      cfg.Avatar.Size,
		GridSize:  cfg.Avatar.GridSize,
		Circular:  cfg.Avatar.Circular,
		Family:    cfg.Avatar.Family,
		Preset:    cfg.Avatar.Preset,
		Constant:  cfg.Avatar.Constant,
		Palette:   cfg.Avatar.Palette,
		NumColors: cfg.Avatar.NumColors,
	}
}

// jobToConfig converts a wizard job to its YAML representation.
func jobToConfig(job *types.JobConfig) *Config {
	return &Config{
		Avatar: AvatarConfigYAML{
			Input:     job.Input,
			Output:    job.Output,
			Format:    job.Format,
			Size:      job.Size,
			GridSize:  job.GridSize,
			Circular:  job.Circular,
			Family:    job.Family,
			Preset:    job.Preset,
			Constant:  job.Constant,
			Palette:   job.Palette,
			NumColors: job.NumColors,
		},
	}
}
