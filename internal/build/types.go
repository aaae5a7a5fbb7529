// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrCycle is returned when step dependencies form a cycle
	ErrCycle = errors.New("cycle detected in build plan")
	// ErrUnknownDependency is returned when a step depends on a step not in the plan
	ErrUnknownDependency = errors.New("unknown dependency")
	// ErrDuplicateStep is returned when two steps share a name
	ErrDuplicateStep = errors.New("duplicate step")
	// ErrUnknownBuildType is returned when a build type name cannot be parsed
	ErrUnknownBuildType = errors.New("unknown build type")
)

// BuildType selects compiler flags for the build and test steps
type BuildType string

const (
	// Debug builds without optimizations or inlining
	Debug BuildType = "Debug"
	// Release builds stripped, path-trimmed binaries and disables test caching
	Release BuildType = "Release"
)

// ParseBuildType parses a build type name case-insensitively.
// An empty name selects Debug.
func ParseBuildType(name string) (BuildType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "debug":
		return Debug, nil
	case "release":
		return Release, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBuildType, name)
	}
}

// Step is a single shell command in the build plan. A non-empty Dir
// runs the command from that directory.
type Step struct {
	Name    string
	Command string
	Dir     string
	Deps    []string
}

// StepResult records the outcome of running one step
type StepResult struct {
	Name     string
	Command  string
	Output   string
	Duration time.Duration
	Err      error
}

// StepError reports the step that stopped the build
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
