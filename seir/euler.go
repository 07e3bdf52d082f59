// SPDX-License-Identifier: MIT

package seir

import (
	"fmt"

	"github.com/katalvlaran/epidem/timegrid"
)

// Step advances prev by one forward-Euler increment of size dt:
//
//	T  = tr.Force(p, prev)
//	S' = S − T·dt
//	E' = E + (T − α·E)·dt
//	I' = I + (α·E − γ·I)·dt
//	R' = R + γ·I·dt
//
// prev is not modified. No clamping is applied to the result.
func Step(prev State, p Params, tr Transmission, dt float64) State {
	force := tr.Force(p, prev)

	return State{
		S: prev.S - force*dt,
		E: prev.E + (force-p.Alpha*prev.E)*dt,
		I: prev.I + (p.Alpha*prev.E-p.Gamma*prev.I)*dt,
		R: prev.R + (p.Gamma*prev.I)*dt,
	}
}

// Simulate integrates the SEIR system over grid with transmission tr.
//
// Returns a trajectory with exactly grid.Len() rows: row 0 is init verbatim,
// row i is Step(row i−1, p, tr, dt) with the grid's dt. A single-point grid
// yields a one-row trajectory and no stepping.
//
// Preconditions and validation (in order):
//  1. tr must be non-nil (ErrNilTransmission).
//  2. grid must have at least one point (timegrid.ErrInvalidTimeGrid).
//  3. init must be non-negative and finite (ErrInvalidState).
//  4. p must be in range (ErrInvalidParameters).
//
// On error no trajectory is returned.
//
// Complexity:
//
//   - Time:   O(N)
//   - Memory: O(N)
func Simulate(init State, p Params, tr Transmission, grid timegrid.Grid) (*Trajectory, error) {
	// 1) Validate inputs.
	if tr == nil {
		return nil, ErrNilTransmission
	}
	n := grid.Len()
	if n < 1 {
		return nil, fmt.Errorf("%w: grid has no points", timegrid.ErrInvalidTimeGrid)
	}
	if err := init.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// 2) Pre-size the trajectory and write the initial row untouched.
	traj := newTrajectory(grid.Points(), tr.Policy(), p)
	traj.set(0, init)

	// 3) Terminal case: no spacing, no stepping.
	dt, ok := grid.Dt()
	if !ok {
		return traj, nil
	}

	// 4) Shared recurrence for every policy.
	prev := init
	for i := 1; i < n; i++ {
		next := Step(prev, p, tr, dt)
		traj.set(i, next)
		prev = next
	}

	return traj, nil
}
