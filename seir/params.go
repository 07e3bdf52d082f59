// SPDX-License-Identifier: MIT

package seir

import (
	"fmt"
	"math"
)

// Defaults of the reference scenario: 5-day incubation, 2-day infectious
// period, contact rate 1.75, distancing at half the contact rate.
const (
	DefaultAlpha      = 0.2
	DefaultBeta       = 1.75
	DefaultGamma      = 0.5
	DefaultRho        = 0.5
	DefaultPopulation = 10000
)

// NewParams returns the Base-policy parameter set {alpha, beta, gamma}.
// Rho is left at 0 and ignored by Base.
func NewParams(alpha, beta, gamma float64) Params {
	return Params{Alpha: alpha, Beta: beta, Gamma: gamma}
}

// NewDistancingParams returns the SocialDistancing parameter set
// {alpha, beta, gamma, rho}.
func NewDistancingParams(alpha, beta, gamma, rho float64) Params {
	return Params{Alpha: alpha, Beta: beta, Gamma: gamma, Rho: rho}
}

// DefaultParams returns the reference scenario rates, including rho.
func DefaultParams() Params {
	return NewDistancingParams(DefaultAlpha, DefaultBeta, DefaultGamma, DefaultRho)
}

// DefaultInitialState seeds one exposed individual in a population of n:
// (1−1/n, 1/n, 0, 0). n < 1 is treated as 1.
func DefaultInitialState(n int) State {
	if n < 1 {
		n = 1
	}
	inv := 1 / float64(n)

	return State{S: 1 - inv, E: inv}
}

// Validate reports ErrInvalidParameters if alpha, beta or gamma is negative
// or not finite, or if rho lies outside [0,1]. The error names the field.
func (p Params) Validate() error {
	rates := [...]struct {
		name string
		v    float64
	}{
		{"alpha", p.Alpha},
		{"beta", p.Beta},
		{"gamma", p.Gamma},
	}
	for _, r := range rates {
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return fmt.Errorf("%w: %s=%v is not finite", ErrInvalidParameters, r.name, r.v)
		}
		if r.v < 0 {
			return fmt.Errorf("%w: %s=%v is negative", ErrInvalidParameters, r.name, r.v)
		}
	}
	if math.IsNaN(p.Rho) || p.Rho < 0 || p.Rho > 1 {
		return fmt.Errorf("%w: rho=%v must lie in [0,1]", ErrInvalidParameters, p.Rho)
	}

	return nil
}

// ReproductionNumber returns the basic reproduction number beta/gamma scaled
// by the policy's contact factor (1 for Base, rho for SocialDistancing).
// It is +Inf when gamma is 0.
func (p Params) ReproductionNumber(policy Policy) float64 {
	contact := p.Beta
	if policy == PolicySocialDistancing {
		contact *= p.Rho
	}
	if p.Gamma == 0 {
		return math.Inf(1)
	}

	return contact / p.Gamma
}
