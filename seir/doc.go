// SPDX-License-Identifier: MIT

// Package seir integrates the four-compartment SEIR epidemic model with the
// explicit (forward) Euler method under two transmission policies.
//
// 🚀 What is SEIR?
//
//	The population is split into fractions S (susceptible), E (exposed),
//	I (infected) and R (recovered). With incubation rate α, contact rate β,
//	recovery rate γ and transmission term T:
//
//	  dS/dt = −T
//	  dE/dt =  T − α·E
//	  dI/dt =  α·E − γ·I
//	  dR/dt =  γ·I
//
//	The four derivatives sum to zero, so S+E+I+R is conserved.
//
// ✨ Policies (the only point of divergence):
//   - Base:             T = β·S·I
//   - SocialDistancing: T = ρ·β·S·I, ρ ∈ [0,1] (0 = full distancing, 1 = none)
//
// Both policies share one stepping routine (Step); the transmission term is
// injected through the Transmission interface.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/epidem/seir"
//	  "github.com/katalvlaran/epidem/timegrid"
//	)
//
//	grid, _ := timegrid.NewWithStep(0, 100, 0.1)
//	tr, err := seir.Simulate(
//	  seir.DefaultInitialState(10000),
//	  seir.DefaultParams(),
//	  seir.SocialDistancing{},
//	  grid,
//	)
//	if err != nil {
//	  // ErrInvalidParameters, ErrInvalidState, ErrNilTransmission, timegrid.ErrInvalidTimeGrid
//	}
//	final := tr.Final()
//
// Numerical notes:
//
//   - Explicit Euler is first order. No clamping is applied: when dt is large
//     relative to the rates, compartments may go negative or overshoot 1.
//     That output is returned as computed.
//   - Runs are pure functions of their inputs; identical inputs give
//     bit-identical trajectories, and separate runs share no state.
//
// Complexity:
//
//   - Time:   O(N) for N grid points (one transmission evaluation per step)
//   - Memory: O(N), four pre-sized column buffers
package seir
