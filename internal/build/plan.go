// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"fmt"

	"mylib/internal/config"
)

// Step names of the default plan
const (
	StepDeps  = "deps"
	StepVet   = "vet"
	StepLint  = "lint"
	StepBuild = "build"
	StepTest  = "test"
)

// DefaultPlan returns the dependency install, vet, build and test steps
// for the Go module in dir.
func DefaultPlan(dir string, bt BuildType) []Step {
	goCmd := fmt.Sprintf("go -C %q", dir)

	buildFlags := `"-gcflags=all=-N -l"`
	testFlags := ""
	if bt == Release {
		buildFlags = `-trimpath "-ldflags=-s -w"`
		testFlags = " -count=1"
	}

	return []Step{
		{Name: StepDeps, Command: goCmd + " mod download"},
		{Name: StepVet, Command: goCmd + " vet ./...", Deps: []string{StepDeps}},
		{Name: StepBuild, Command: goCmd + " build " + buildFlags + " ./...", Deps: []string{StepVet}},
		{Name: StepTest, Command: goCmd + " test" + testFlags + " ./...", Deps: []string{StepBuild}},
	}
}

// PlanFromConfig returns the default plan with the configured command
// overrides applied. A lint command adds a lint step between deps and test.
// Every step runs from the project working directory.
func PlanFromConfig(cfg *config.Config) ([]Step, error) {
	bt, err := ParseBuildType(cfg.Build.Type)
	if err != nil {
		return nil, err
	}

	steps := DefaultPlan(cfg.Project.WorkingDirectory, bt)
	overrides := map[string]string{
		StepDeps:  cfg.Build.Commands.Deps,
		StepVet:   cfg.Build.Commands.Vet,
		StepBuild: cfg.Build.Commands.Build,
		StepTest:  cfg.Build.Commands.Test,
	}
	for i := range steps {
		if cmd := overrides[steps[i].Name]; cmd != "" {
			steps[i].Command = cmd
		}
	}

	if cfg.Build.Commands.Lint != "" {
		for i := range steps {
			if steps[i].Name == StepTest {
				steps[i].Deps = append(steps[i].Deps, StepLint)
			}
		}
		steps = append(steps, Step{Name: StepLint, Command: cfg.Build.Commands.Lint, Deps: []string{StepDeps}})
	}

	for i := range steps {
		steps[i].Dir = cfg.Project.WorkingDirectory
	}

	return steps, nil
}
