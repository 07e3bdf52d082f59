// SPDX-License-Identifier: MIT

package timegrid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrInvalidTimeGrid indicates a grid that cannot be built: end ≤ start,
	// fewer than one step, a non-positive step size, non-finite bounds, or
	// explicit points that are empty, not strictly increasing, or not uniform.
	ErrInvalidTimeGrid = errors.New("timegrid: invalid time grid")

	// ErrIndexOutOfRange indicates At was called with an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("timegrid: index out of range")
)

// UniformityTolerance is the relative tolerance FromPoints allows between
// any spacing t[i]−t[i−1] and the reference spacing t[1]−t[0].
const UniformityTolerance = 1e-9

// Grid is an immutable, strictly increasing, uniformly spaced sequence of
// time points. The zero value has no points and is rejected by integrators.
type Grid struct {
	points []float64
	dt     float64 // t[1]-t[0]; zero when len(points) < 2
}
