// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mylib/internal/calculator"
)

// Location of the configuration file relative to the project directory
const (
	Dir      = ".mylib"
	FileName = "mylib.yaml"
)

// ErrNotFound is returned when no configuration file exists
var ErrNotFound = errors.New("configuration file not found")

// Config represents the complete MyLib configuration
type Config struct {
	Project    ProjectConfig    `yaml:"project"`
	Arithmetic ArithmeticConfig `yaml:"arithmetic"`
	Build      BuildConfig      `yaml:"build"`
}

// ProjectConfig holds project-level configuration
type ProjectConfig struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	WorkingDirectory string `yaml:"working_directory"`
}

// ArithmeticConfig selects how additions behave at the int boundary
type ArithmeticConfig struct {
	Overflow string `yaml:"overflow"`
}

// BuildConfig specifies the build type and command overrides
type BuildConfig struct {
	Type     string        `yaml:"type"`
	Commands BuildCommands `yaml:"commands"`
}

// BuildCommands override the default build steps. Empty means default.
type BuildCommands struct {
	Deps  string `yaml:"deps"`
	Vet   string `yaml:"vet"`
	Build string `yaml:"build"`
	Test  string `yaml:"test"`
	Lint  string `yaml:"lint"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name: "mylib",
		},
		Arithmetic: ArithmeticConfig{
			Overflow: calculator.PolicyWrap.String(),
		},
		Build: BuildConfig{
			Type: "Debug",
		},
	}
}

// Load loads the configuration from <dir>/.mylib/mylib.yaml
func Load(dir string) (*Config, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = cwd
	}

	return LoadFile(filepath.Join(dir, Dir, FileName))
}

// LoadFile loads the configuration from an explicit path. A relative
// working directory is resolved against the project directory, which is
// the parent of the .mylib directory when the file lives there.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	if filepath.Base(base) == Dir {
		base = filepath.Dir(base)
	}

	switch {
	case cfg.Project.WorkingDirectory == "":
		cfg.Project.WorkingDirectory = base
	case !filepath.IsAbs(cfg.Project.WorkingDirectory):
		cfg.Project.WorkingDirectory = filepath.Join(base, cfg.Project.WorkingDirectory)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Project.Name == "" {
		return fmt.Errorf("project name is required")
	}

	if c.Project.WorkingDirectory == "" {
		return fmt.Errorf("working directory is required")
	}

	if _, err := c.Policy(); err != nil {
		return err
	}

	switch strings.ToLower(c.Build.Type) {
	case "debug", "release":
	default:
		return fmt.Errorf("build type must be Debug or Release, got %q", c.Build.Type)
	}

	return nil
}

// Policy returns the configured overflow policy
func (c *Config) Policy() (calculator.Policy, error) {
	p, err := calculator.ParsePolicy(c.Arithmetic.Overflow)
	if err != nil {
		return p, fmt.Errorf("invalid arithmetic.overflow: %w", err)
	}
	return p, nil
}
