// Package service runs simulations with logging, metrics and tracing
// around the pure seir entry points. The CLI and the HTTP handler share it.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/epidem/internal/logging"
	"github.com/katalvlaran/epidem/internal/observability"
	"github.com/katalvlaran/epidem/report"
	"github.com/katalvlaran/epidem/seir"
)

// ErrTooManySteps is returned when a grid exceeds the runner's step limit.
var ErrTooManySteps = errors.New("service: too many steps")

// policyBoth labels spans and logs of paired runs.
const policyBoth = "both"

// Runner executes simulations. The zero value is not usable; call New.
type Runner struct {
	log      logging.Logger
	metrics  *observability.Collector
	tracer   trace.Tracer
	maxSteps int
}

// Option configures a Runner.
type Option func(*Runner)

// WithMetrics records every run on c.
func WithMetrics(c *observability.Collector) Option {
	return func(r *Runner) { r.metrics = c }
}

// WithMaxSteps caps the number of Euler steps per run. Panics if n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("service: WithMaxSteps(%d): limit must be at least 1", n))
	}
	return func(r *Runner) { r.maxSteps = n }
}

// New builds a Runner logging to log (nil means Noop).
func New(log logging.Logger, opts ...Option) *Runner {
	if log == nil {
		log = logging.Noop()
	}
	r := &Runner{
		log:    log,
		tracer: otel.Tracer(observability.TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Simulate runs cfg under cfg.Policy.
func (r *Runner) Simulate(ctx context.Context, cfg seir.Config) (*seir.Trajectory, error) {
	policy := string(cfg.Policy)
	ctx, span := r.tracer.Start(ctx, "seir.run", trace.WithAttributes(runAttributes(policy, cfg)...))
	defer span.End()

	start := time.Now()
	traj, err := r.run(ctx, cfg)
	elapsed := time.Since(start)

	steps := 0
	if traj != nil {
		steps = traj.Len() - 1
	}
	r.metrics.ObserveRun(policy, steps, elapsed, err)
	r.finish(ctx, span, policy, steps, elapsed, err)
	if err != nil {
		return nil, err
	}

	return traj, nil
}

// Compare runs cfg under both policies concurrently and summarizes the
// difference. cfg.Policy is ignored.
func (r *Runner) Compare(ctx context.Context, cfg seir.Config) (report.Comparison, *seir.Trajectory, *seir.Trajectory, error) {
	ctx, span := r.tracer.Start(ctx, "seir.compare", trace.WithAttributes(runAttributes(policyBoth, cfg)...))
	defer span.End()

	start := time.Now()
	var (
		base, distancing *seir.Trajectory
		err              error
	)
	if err = r.checkSteps(cfg); err == nil {
		base, distancing, err = seir.RunBoth(ctx, cfg)
	}
	elapsed := time.Since(start)

	steps := 0
	if base != nil {
		steps = base.Len() - 1
	}
	r.metrics.ObserveRun(string(seir.PolicyBase), steps, elapsed, err)
	r.metrics.ObserveRun(string(seir.PolicySocialDistancing), steps, elapsed, err)
	r.finish(ctx, span, policyBoth, steps, elapsed, err)
	if err != nil {
		return report.Comparison{}, nil, nil, err
	}

	cmp, err := report.Compare(base, distancing)
	if err != nil {
		return report.Comparison{}, nil, nil, err
	}

	return cmp, base, distancing, nil
}

func (r *Runner) run(ctx context.Context, cfg seir.Config) (*seir.Trajectory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.checkSteps(cfg); err != nil {
		return nil, err
	}

	return seir.Run(cfg)
}

// checkSteps rejects grids longer than maxSteps before any buffer is sized.
func (r *Runner) checkSteps(cfg seir.Config) error {
	if r.maxSteps == 0 {
		return nil
	}
	grid, err := cfg.TimeGrid()
	if err != nil {
		return err
	}
	if grid.Steps() > r.maxSteps {
		return fmt.Errorf("%w: %d steps exceed the limit of %d", ErrTooManySteps, grid.Steps(), r.maxSteps)
	}

	return nil
}

func (r *Runner) finish(ctx context.Context, span trace.Span, policy string, steps int, elapsed time.Duration, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.Warn(ctx, "simulation failed",
			logging.String("policy", policy),
			logging.Err(err),
		)
		return
	}
	span.SetAttributes(attribute.Int("seir.steps", steps))
	r.log.Debug(ctx, "simulation finished",
		logging.String("policy", policy),
		logging.Int("steps", steps),
		logging.Duration("elapsed", elapsed),
	)
}

func runAttributes(policy string, cfg seir.Config) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("seir.policy", policy),
		attribute.Float64("seir.alpha", cfg.Params.Alpha),
		attribute.Float64("seir.beta", cfg.Params.Beta),
		attribute.Float64("seir.gamma", cfg.Params.Gamma),
		attribute.Float64("seir.rho", cfg.Params.Rho),
		attribute.Float64("seir.end", cfg.End),
		attribute.Float64("seir.dt", cfg.Dt),
	}
}
