// SPDX-License-Identifier: MIT

package seir

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the seir package. Callers match with errors.Is;
// returned errors are wrapped with the offending field or value.
var (
	// ErrInvalidParameters indicates a rate outside its physical range:
	// alpha, beta, gamma must be finite and ≥ 0; rho must lie in [0,1].
	ErrInvalidParameters = errors.New("seir: invalid parameters")

	// ErrInvalidState indicates a compartment fraction that is negative or not finite.
	ErrInvalidState = errors.New("seir: invalid compartment state")

	// ErrNilTransmission indicates Simulate was called without a transmission strategy.
	ErrNilTransmission = errors.New("seir: transmission strategy is nil")

	// ErrUnknownPolicy indicates a policy name that maps to no transmission strategy.
	ErrUnknownPolicy = errors.New("seir: unknown policy")

	// ErrUnknownCompartment indicates a Compartment outside S, E, I, R.
	ErrUnknownCompartment = errors.New("seir: unknown compartment")

	// ErrIndexOutOfRange indicates a trajectory row index outside [0, Len).
	ErrIndexOutOfRange = errors.New("seir: index out of range")
)

// State holds the four compartment fractions at one instant.
// It is a value type: each Euler step produces a new State.
type State struct {
	S float64 // susceptible
	E float64 // exposed
	I float64 // infected
	R float64 // recovered
}

// Total returns S+E+I+R, the conserved population fraction.
func (s State) Total() float64 {
	return s.S + s.E + s.I + s.R
}

// Array returns the fractions in the fixed field order S, E, I, R.
func (s State) Array() [4]float64 {
	return [4]float64{s.S, s.E, s.I, s.R}
}

// Validate reports ErrInvalidState if any fraction is negative, NaN or ±Inf.
// The sum is not required to be 1.
func (s State) Validate() error {
	vals := s.Array()
	for c, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v is not finite", ErrInvalidState, Compartment(c), v)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s=%v is negative", ErrInvalidState, Compartment(c), v)
		}
	}

	return nil
}

// Params is the immutable set of rate constants for one run.
//
//   - Alpha: inverse incubation period (E → I rate).
//   - Beta:  contact rate.
//   - Gamma: inverse infectious period (I → R rate).
//   - Rho:   social distancing factor; read only by the SocialDistancing policy.
type Params struct {
	Alpha float64
	Beta  float64
	Gamma float64
	Rho   float64
}

// Compartment indexes one of the four fractions in the fixed order S, E, I, R.
type Compartment int

const (
	// Susceptible is the S compartment.
	Susceptible Compartment = iota
	// Exposed is the E compartment.
	Exposed
	// Infected is the I compartment.
	Infected
	// Recovered is the R compartment.
	Recovered
)

// Compartments lists all compartments in field order.
var Compartments = [4]Compartment{Susceptible, Exposed, Infected, Recovered}

// String returns the single-letter compartment label.
func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "S"
	case Exposed:
		return "E"
	case Infected:
		return "I"
	case Recovered:
		return "R"
	default:
		return fmt.Sprintf("Compartment(%d)", int(c))
	}
}

// Policy names a transmission policy.
type Policy string

const (
	// PolicyBase uses the unmodified contact rate.
	PolicyBase Policy = "base"
	// PolicySocialDistancing scales the contact rate by rho.
	PolicySocialDistancing Policy = "social_distancing"
)

// ParsePolicy maps a policy name to a Policy. "sd" and "distancing" are
// accepted as short forms of social_distancing.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case string(PolicyBase):
		return PolicyBase, nil
	case string(PolicySocialDistancing), "sd", "distancing":
		return PolicySocialDistancing, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
