package dictionary

import (
	"embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/compare.yaml
var defaultConfigFS embed.FS

// Config holds the input/output paths and report sample sizes for a run.
type Config struct {
	OriginalPath string       `yaml:"original_path"`
	PublicPath   string       `yaml:"public_path"`
	OutputPath   string       `yaml:"output_path"`
	Samples      SampleLimits `yaml:"samples"`
}

// SampleLimits caps how many entries each report section prints.
type SampleLimits struct {
	Diff            int `yaml:"diff"`
	MultiTokenLines int `yaml:"multi_token_lines"`
	Tokens          int `yaml:"tokens"`
}

// DefaultConfig returns the configuration compiled into the binary.
func DefaultConfig() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("config/compare.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.OriginalPath == "":
		return errors.New("config: original_path is required")
	case c.PublicPath == "":
		return errors.New("config: public_path is required")
	case c.OutputPath == "":
		return errors.New("config: output_path is required")
	case c.Samples.Diff < 0 || c.Samples.MultiTokenLines < 0 || c.Samples.Tokens < 0:
		return errors.New("config: sample limits must be >= 0")
	}
	return nil
}
