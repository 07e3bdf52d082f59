// SPDX-License-Identifier: MIT

package timegrid

import (
	"fmt"
	"math"
)

// New builds steps+1 evenly spaced points from start to end inclusive.
//
// Point i is start + i·(end−start)/steps; the last point is set to end
// exactly so the horizon is never lost to rounding.
//
// Errors:
//   - ErrInvalidTimeGrid if start or end is NaN/±Inf, end ≤ start, or steps < 1.
//
// Complexity: O(steps) time and memory.
func New(start, end float64, steps int) (Grid, error) {
	// 1) Validate bounds and step count.
	if !isFinite(start) || !isFinite(end) {
		return Grid{}, fmt.Errorf("%w: bounds must be finite (start=%v, end=%v)", ErrInvalidTimeGrid, start, end)
	}
	if end <= start {
		return Grid{}, fmt.Errorf("%w: end %v must be greater than start %v", ErrInvalidTimeGrid, end, start)
	}
	if steps < 1 {
		return Grid{}, fmt.Errorf("%w: step count %d must be at least 1", ErrInvalidTimeGrid, steps)
	}

	// 2) Fill points; the step count is known, so the buffer is exact.
	step := (end - start) / float64(steps)
	points := make([]float64, steps+1)
	for i := 0; i < steps; i++ {
		points[i] = start + float64(i)*step
	}
	points[steps] = end

	return Grid{points: points, dt: points[1] - points[0]}, nil
}

// NewWithStep builds a grid from start to end inclusive with spacing close to dt.
//
// The step count is round((end−start)/dt), so a horizon of 100 with dt=0.1
// yields 1000 steps even though 100/0.1 is not exact in binary. When dt does
// not divide the span, the effective spacing is (end−start)/steps and Dt
// reports that value, not the requested one.
//
// Errors:
//   - ErrInvalidTimeGrid if dt is not finite or dt ≤ 0, plus every New error.
func NewWithStep(start, end, dt float64) (Grid, error) {
	if !isFinite(dt) || dt <= 0 {
		return Grid{}, fmt.Errorf("%w: step size %v must be positive", ErrInvalidTimeGrid, dt)
	}
	if !isFinite(start) || !isFinite(end) {
		return Grid{}, fmt.Errorf("%w: bounds must be finite (start=%v, end=%v)", ErrInvalidTimeGrid, start, end)
	}
	if end <= start {
		return Grid{}, fmt.Errorf("%w: end %v must be greater than start %v", ErrInvalidTimeGrid, end, start)
	}

	steps := math.Round((end - start) / dt)
	if steps < 1 || steps > math.MaxInt32 {
		return Grid{}, fmt.Errorf("%w: step size %v gives %v steps over [%v, %v]", ErrInvalidTimeGrid, dt, steps, start, end)
	}

	return New(start, end, int(steps))
}

// FromPoints wraps an explicit sequence of time points.
//
// The slice is copied. It must be non-empty, finite and strictly increasing,
// and every spacing must match t[1]−t[0] within UniformityTolerance (relative).
// A single point is accepted and yields a grid without spacing.
//
// Errors:
//   - ErrInvalidTimeGrid on any violated condition, wrapped with the index.
func FromPoints(points []float64) (Grid, error) {
	n := len(points)
	if n == 0 {
		return Grid{}, fmt.Errorf("%w: at least one point is required", ErrInvalidTimeGrid)
	}

	for i, p := range points {
		if !isFinite(p) {
			return Grid{}, fmt.Errorf("%w: point %d is not finite", ErrInvalidTimeGrid, i)
		}
	}
	if n == 1 {
		return Grid{points: []float64{points[0]}}, nil
	}

	dt := points[1] - points[0]
	if dt <= 0 {
		return Grid{}, fmt.Errorf("%w: points must be strictly increasing (index 1)", ErrInvalidTimeGrid)
	}
	tol := UniformityTolerance * dt
	for i := 2; i < n; i++ {
		d := points[i] - points[i-1]
		if d <= 0 {
			return Grid{}, fmt.Errorf("%w: points must be strictly increasing (index %d)", ErrInvalidTimeGrid, i)
		}
		if math.Abs(d-dt) > tol {
			return Grid{}, fmt.Errorf("%w: spacing at index %d is %v, want %v", ErrInvalidTimeGrid, i, d, dt)
		}
	}

	cp := make([]float64, n)
	copy(cp, points)

	return Grid{points: cp, dt: dt}, nil
}

// Len returns the number of points in the grid.
func (g Grid) Len() int { return len(g.points) }

// Steps returns the number of Euler steps the grid implies, Len()−1.
// The zero Grid reports 0.
func (g Grid) Steps() int {
	if len(g.points) == 0 {
		return 0
	}

	return len(g.points) - 1
}

// Dt returns the uniform spacing t[1]−t[0]. ok is false when the grid has
// fewer than two points; callers must then treat the run as terminal.
func (g Grid) Dt() (dt float64, ok bool) {
	if len(g.points) < 2 {
		return 0, false
	}

	return g.dt, true
}

// At returns the i-th time point.
func (g Grid) At(i int) (float64, error) {
	if i < 0 || i >= len(g.points) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(g.points))
	}

	return g.points[i], nil
}

// Start returns the first point, or 0 for the zero Grid.
func (g Grid) Start() float64 {
	if len(g.points) == 0 {
		return 0
	}

	return g.points[0]
}

// End returns the last point, or 0 for the zero Grid.
func (g Grid) End() float64 {
	if len(g.points) == 0 {
		return 0
	}

	return g.points[len(g.points)-1]
}

// Points returns a copy of the grid points.
func (g Grid) Points() []float64 {
	cp := make([]float64, len(g.points))
	copy(cp, g.points)

	return cp
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
