// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"mylib/internal/build"
	"mylib/internal/calculator"
	"mylib/internal/config"
	"mylib/internal/logging"
	"mylib/internal/telemetry"
)

const usage = `Usage: mylib <command> [flags]

Commands:
  add    Add two integers
  build  Download dependencies, vet, build and test the module
`

func main() {
	slog.SetDefault(logging.FromEnv(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mylib: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("no command given")
	}

	switch args[0] {
	case "add":
		return runAdd(args[1:], stdout, stderr)
	case "build":
		return runBuild(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runAdd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		overflow   = fs.String("overflow", "", "Overflow policy: wrap, saturate or checked")
		configPath = fs.String("config", "", "Path to configuration file")
	)
	flagArgs, rest := splitOperands(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	args = append(fs.Args(), rest...)
	if len(args) != 2 {
		return fmt.Errorf("add takes exactly two operands, got %d", len(args))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *overflow != "" {
		cfg.Arithmetic.Overflow = *overflow
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	operands := make([]int, 0, 2)
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid operand %q: %w", arg, err)
		}
		operands = append(operands, v)
	}

	sum, err := calculator.New(calculator.WithPolicy(policy)).Add(operands[0], operands[1])
	if err != nil {
		return err
	}

	slog.Debug("Computed sum", "a", operands[0], "b", operands[1], "policy", policy.String(), "sum", sum)
	fmt.Fprintln(stdout, sum)
	return nil
}

// splitOperands separates leading flags from operands. The first token that
// is an integer, is not a flag, or is "--" starts the operands, so negative
// numbers are never parsed as flags.
func splitOperands(fs *flag.FlagSet, args []string) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if _, err := strconv.Atoi(arg); err == nil || !strings.HasPrefix(arg, "-") {
			return args[:i], args[i:]
		}
		name := strings.TrimLeft(arg, "-")
		if !strings.Contains(name, "=") && fs.Lookup(name) != nil {
			i++ // value of a string flag
		}
	}
	return args, nil
}

func runBuild(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		buildType    = fs.String("build-type", "", "Build type: Debug or Release")
		dir          = fs.String("dir", "", "Module directory to build")
		configPath   = fs.String("config", "", "Path to configuration file")
		otlpEndpoint = fs.String("otlp-endpoint", "", "OTLP/HTTP collector endpoint (host:port) for build traces")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *buildType != "" {
		cfg.Build.Type = *buildType
	}
	if *dir != "" {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return fmt.Errorf("failed to resolve directory: %w", err)
		}
		cfg.Project.WorkingDirectory = abs
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if *otlpEndpoint != "" {
		tcfg := telemetry.DefaultConfig()
		tcfg.CollectorURL = *otlpEndpoint
		tp, err := telemetry.NewTracerProvider(ctx, tcfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				slog.Warn("Failed to flush traces", "error", err)
			}
		}()
	}

	steps, err := build.PlanFromConfig(cfg)
	if err != nil {
		return err
	}

	slog.Info("Building project",
		"project", cfg.Project.Name,
		"dir", cfg.Project.WorkingDirectory,
		"build_type", cfg.Build.Type)

	results, err := build.NewRunner().Run(ctx, steps)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stdout, "❌ %s (%s)\n%s", res.Name, res.Duration.Round(time.Millisecond), res.Output)
			continue
		}
		fmt.Fprintf(stdout, "✅ %s (%s)\n", res.Name, res.Duration.Round(time.Millisecond))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Build completed successfully!")
	return nil
}

// loadConfig reads an explicit config file, or the project config in the
// current directory when present, falling back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	cfg, err := config.Load("")
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg = config.Default()
	cfg.Project.WorkingDirectory = cwd
	return cfg, nil
}
