// Package config handles generator configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/codex-avatar/pkg/geometry"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultOutputPath is where the avatar is written, relative to the project root.
const DefaultOutputPath = "assets/avatars/codex-vitae-avatar.gltf"

// Config holds all generator settings.
type Config struct {
	Output       OutputConfig       `yaml:"output"`
	Tessellation TessellationConfig `yaml:"tessellation"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Indent bool   `yaml:"indent"` // Pretty-print the JSON document
}

// TessellationConfig holds segment counts for the generated primitives.
type TessellationConfig struct {
	SphereLat        int `yaml:"sphere_lat"`
	SphereLon        int `yaml:"sphere_lon"`
	CylinderSegments int `yaml:"cylinder_segments"`
	DiskSegments     int `yaml:"disk_segments"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the values the avatar was designed with.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Indent: true,
		},
		Tessellation: TessellationConfig{
			SphereLat:        30,
			SphereLon:        42,
			CylinderSegments: 42,
			DiskSegments:     64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the config can drive a build.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output.path is empty", ErrInvalidConfig)
	}
	segs := []struct {
		name  string
		value int
	}{
		{"tessellation.sphere_lat", c.Tessellation.SphereLat},
		{"tessellation.sphere_lon", c.Tessellation.SphereLon},
		{"tessellation.cylinder_segments", c.Tessellation.CylinderSegments},
		{"tessellation.disk_segments", c.Tessellation.DiskSegments},
	}
	for _, s := range segs {
		if s.value < geometry.MinSegments {
			return fmt.Errorf("%w: %s = %d, need at least %d", ErrInvalidConfig, s.name, s.value, geometry.MinSegments)
		}
	}
	return nil
}
