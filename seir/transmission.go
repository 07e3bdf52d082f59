// SPDX-License-Identifier: MIT

package seir

import "fmt"

// Transmission computes the force-of-infection term T for one step.
// It is the only behavior that differs between policies; Step consumes it
// and applies the shared recurrence.
type Transmission interface {
	// Force returns T for the given rates and current state.
	Force(p Params, s State) float64
	// Policy names the strategy.
	Policy() Policy
}

// Base is the unmodified policy: T = beta·S·I.
type Base struct{}

// Force returns beta·S·I.
func (Base) Force(p Params, s State) float64 {
	return p.Beta * s.S * s.I
}

// Policy returns PolicyBase.
func (Base) Policy() Policy { return PolicyBase }

// SocialDistancing scales the contact rate by Params.Rho: T = rho·beta·S·I.
// With rho=1 it matches Base bit for bit; with rho=0 transmission stops.
type SocialDistancing struct{}

// Force returns rho·beta·S·I.
func (SocialDistancing) Force(p Params, s State) float64 {
	return p.Rho * p.Beta * s.S * s.I
}

// Policy returns PolicySocialDistancing.
func (SocialDistancing) Policy() Policy { return PolicySocialDistancing }

// StrategyFor returns the transmission strategy for a policy.
func StrategyFor(policy Policy) (Transmission, error) {
	switch policy {
	case PolicyBase:
		return Base{}, nil
	case PolicySocialDistancing:
		return SocialDistancing{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
	}
}
