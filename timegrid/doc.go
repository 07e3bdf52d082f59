// SPDX-License-Identifier: MIT

// Package timegrid builds the ordered, uniformly spaced sequence of time
// instants an explicit integrator steps across.
//
// 🚀 What is a time grid?
//
//	A grid is N+1 points t[0] < t[1] < … < t[N] with a constant spacing
//	dt = t[1] − t[0]. Integrators read dt once and apply it to every step,
//	so non-uniform grids are rejected at construction time.
//
// ✨ Constructors:
//   - New(start, end, steps)       steps+1 points, endpoints inclusive (linspace).
//   - NewWithStep(start, end, dt)  step count derived from the requested dt.
//   - FromPoints(points)           explicit grid, validated for uniformity.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/epidem/timegrid"
//
//	g, err := timegrid.NewWithStep(0, 100, 0.1) // 1001 points, dt = 0.1
//	if err != nil {
//	  // errors.Is(err, timegrid.ErrInvalidTimeGrid)
//	}
//	dt, ok := g.Dt() // ok == false only for a single-point grid
//
// A single-point grid is valid: it has no spacing, and an integrator given
// such a grid performs no steps.
//
// Complexity:
//
//   - Time:   O(N) to build or validate
//   - Memory: O(N)
package timegrid
