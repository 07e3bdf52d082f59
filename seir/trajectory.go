// SPDX-License-Identifier: MIT

package seir

import "fmt"

// Trajectory is the time series produced by one integration run: one row per
// grid point, four fields per row in the order S, E, I, R. Row 0 is the
// initial state exactly. A Trajectory is read-only once returned.
type Trajectory struct {
	times  []float64
	cols   [4][]float64 // indexed by Compartment; each has len(times)
	policy Policy
	params Params
}

// newTrajectory allocates a trajectory with exactly n rows. The step count
// is known from the grid, so no buffer ever grows.
func newTrajectory(times []float64, policy Policy, p Params) *Trajectory {
	n := len(times)
	tr := &Trajectory{
		times:  times,
		policy: policy,
		params: p,
	}
	for c := range tr.cols {
		tr.cols[c] = make([]float64, n)
	}

	return tr
}

// set writes row i. It is the assembler's only writer.
func (tr *Trajectory) set(i int, s State) {
	tr.cols[Susceptible][i] = s.S
	tr.cols[Exposed][i] = s.E
	tr.cols[Infected][i] = s.I
	tr.cols[Recovered][i] = s.R
}

// state reads row i without bounds reporting.
func (tr *Trajectory) state(i int) State {
	return State{
		S: tr.cols[Susceptible][i],
		E: tr.cols[Exposed][i],
		I: tr.cols[Infected][i],
		R: tr.cols[Recovered][i],
	}
}

// Len returns the number of rows, equal to the grid length.
func (tr *Trajectory) Len() int { return len(tr.times) }

// Policy returns the transmission policy that produced the trajectory.
func (tr *Trajectory) Policy() Policy { return tr.policy }

// Params returns the rates the trajectory was integrated with.
func (tr *Trajectory) Params() Params { return tr.params }

// At returns the state at row i.
func (tr *Trajectory) At(i int) (State, error) {
	if i < 0 || i >= len(tr.times) {
		return State{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(tr.times))
	}

	return tr.state(i), nil
}

// Time returns the grid instant of row i.
func (tr *Trajectory) Time(i int) (float64, error) {
	if i < 0 || i >= len(tr.times) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(tr.times))
	}

	return tr.times[i], nil
}

// Initial returns row 0.
func (tr *Trajectory) Initial() State { return tr.state(0) }

// Final returns the last row.
func (tr *Trajectory) Final() State { return tr.state(len(tr.times) - 1) }

// Times returns a copy of the grid instants.
func (tr *Trajectory) Times() []float64 {
	cp := make([]float64, len(tr.times))
	copy(cp, tr.times)

	return cp
}

// Column returns a copy of one compartment's series.
func (tr *Trajectory) Column(c Compartment) ([]float64, error) {
	if c < Susceptible || c > Recovered {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompartment, int(c))
	}
	cp := make([]float64, len(tr.cols[c]))
	copy(cp, tr.cols[c])

	return cp, nil
}

// Rows returns the n×4 table of the trajectory in field order S, E, I, R.
func (tr *Trajectory) Rows() [][4]float64 {
	rows := make([][4]float64, len(tr.times))
	for i := range rows {
		rows[i] = tr.state(i).Array()
	}

	return rows
}

// MaxConservationDrift returns max_i |Total(i) − Total(0)|, the accumulated
// floating-point drift of the conserved sum.
func (tr *Trajectory) MaxConservationDrift() float64 {
	ref := tr.state(0).Total()
	var drift float64
	for i := 1; i < len(tr.times); i++ {
		d := tr.state(i).Total() - ref
		if d < 0 {
			d = -d
		}
		if d > drift {
			drift = d
		}
	}

	return drift
}
