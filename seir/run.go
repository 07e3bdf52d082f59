// SPDX-License-Identifier: MIT

package seir

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/epidem/timegrid"
)

// Config is the complete input of one run: initial state, rates, policy and
// the time grid. Grid, when non-nil, takes precedence over Start/End/Dt.
type Config struct {
	Initial State
	Params  Params
	Policy  Policy

	Start float64 // first grid instant (days)
	End   float64 // horizon (days)
	Dt    float64 // step size (days)

	Grid *timegrid.Grid
}

// DefaultConfig returns the reference scenario: N=10000 with one exposed
// individual, default rates, Base policy, 100 days at dt=0.1.
func DefaultConfig() Config {
	return Config{
		Initial: DefaultInitialState(DefaultPopulation),
		Params:  DefaultParams(),
		Policy:  PolicyBase,
		Start:   0,
		End:     100,
		Dt:      0.1,
	}
}

// WithPolicy returns a copy of c running under policy.
func (c Config) WithPolicy(policy Policy) Config {
	c.Policy = policy

	return c
}

// TimeGrid resolves the grid for c: the explicit Grid if set, otherwise
// timegrid.NewWithStep(Start, End, Dt).
func (c Config) TimeGrid() (timegrid.Grid, error) {
	if c.Grid != nil {
		return *c.Grid, nil
	}

	return timegrid.NewWithStep(c.Start, c.End, c.Dt)
}

// Run resolves the grid and strategy from cfg and integrates once.
// It fails with ErrUnknownPolicy, timegrid.ErrInvalidTimeGrid or any
// Simulate error; a failed run yields no trajectory.
func Run(cfg Config) (*Trajectory, error) {
	tr, err := StrategyFor(cfg.Policy)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.TimeGrid()
	if err != nil {
		return nil, err
	}

	return Simulate(cfg.Initial, cfg.Params, tr, grid)
}

// RunBoth integrates cfg under Base and SocialDistancing concurrently.
// cfg.Policy is ignored. The runs share nothing, so the result equals two
// sequential Run calls. If either run fails, both results are nil.
func RunBoth(ctx context.Context, cfg Config) (base, distancing *Trajectory, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var runErr error
		base, runErr = Run(cfg.WithPolicy(PolicyBase))

		return runErr
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var runErr error
		distancing, runErr = Run(cfg.WithPolicy(PolicySocialDistancing))

		return runErr
	})

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return base, distancing, nil
}
