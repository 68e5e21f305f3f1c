package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/shaderkit/internal/shader"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Root       string // directory searched for .hlsl sources
	ConfigPath string // project file; empty means <Root>/shaderc.hcl when present

	OutputMode   string // "spirv" or "dxil"; empty defers to the project file
	CompilerPath string // overrides the project file when set
	ManifestPath string // empty disables the manifest

	DryRun bool
	Watch  bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("Root is a required configuration field and cannot be empty")
	}
	if cfg.OutputMode != "" {
		if _, err := shader.ParseOutputMode(cfg.OutputMode); err != nil {
			return nil, fmt.Errorf("invalid output mode: %w", err)
		}
	}
	if cfg.Watch && cfg.DryRun {
		return nil, errors.New("watch and dry-run cannot be combined")
	}

	return &cfg, nil
}
