// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bitfield/script"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mylib/internal/telemetry"
)

// TracerName is the instrumentation name used for build spans
const TracerName = "mylib/build"

// Runner executes build steps as shell commands using bitfield/script
type Runner struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithTracer sets the tracer. Defaults to the global tracer provider.
func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) {
		r.tracer = t
	}
}

// NewRunner creates a Runner
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.Default(),
		tracer: telemetry.GetTracer(TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run orders the steps and executes them one at a time, stopping at the
// first failure. The returned results include the failing step.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]StepResult, error) {
	order, err := Order(steps)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Step, len(steps))
	for _, s := range steps {
		byName[s.Name] = s
	}

	ctx, span := r.tracer.Start(ctx, "build.run", trace.WithAttributes(
		telemetry.AttrOrder.StringSlice(order),
	))
	defer span.End()

	logAttrs := []any{"steps", strings.Join(order, ",")}
	if span.SpanContext().IsValid() {
		logAttrs = append(logAttrs, "trace_id", telemetry.TraceID(ctx))
	}
	r.logger.Info("Starting build", logAttrs...)

	results := make([]StepResult, 0, len(order))
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			r.logger.Warn("Build cancelled", "next_step", name, "error", err)
			return results, fmt.Errorf("build cancelled before step %s: %w", name, err)
		}

		res := r.runStep(ctx, byName[name])
		results = append(results, res)
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, "step "+name+" failed")
			return results, &StepError{Step: name, Err: res.Err}
		}
	}

	r.logger.Info("Build completed successfully", "steps", len(results))
	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) StepResult {
	_, span := r.tracer.Start(ctx, "build."+step.Name,
		trace.WithAttributes(telemetry.StepAttrs(step.Name, step.Command)...))
	defer span.End()

	r.logger.Info("Running step", "step", step.Name, "cmd", step.Command)

	start := time.Now()
	output, err := script.Exec(shellCommand(step)).String()
	res := StepResult{
		Name:     step.Name,
		Command:  step.Command,
		Output:   output,
		Duration: time.Since(start),
	}
	span.SetAttributes(telemetry.ResultAttrs(res.Duration, err)...)

	if err != nil {
		res.Err = fmt.Errorf("shell command failed: %w", err)
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("Step failed", "step", step.Name, "error", err, "output", output)
		return res
	}

	r.logger.Debug("Step succeeded", "step", step.Name, "duration", res.Duration, "output", output)
	return res
}

// shellCommand wraps the step command in "sh -c 'cd <dir> && <command>'"
// when the step has a directory.
func shellCommand(step Step) string {
	if step.Dir == "" {
		return step.Command
	}
	return "sh -c " + shellQuote("cd "+shellQuote(step.Dir)+" && "+step.Command)
}

// shellQuote single-quotes s for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
