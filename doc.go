// Package epidem integrates a deterministic SEIR epidemic model and compares
// transmission policies, from the time grid up to an HTTP API.
//
// 🚀 What is epidem?
//
//	A small, pure-Go toolkit that brings together:
//		• Time grids: uniform, inclusive grids by step count or step size
//		• SEIR integration: forward Euler under an injected transmission policy
//		• Policies: Base (β·S·I) and SocialDistancing (ρ·β·S·I)
//		• Reports: peak, final sizes, attack rate, CSV and text tables
//		• Curve comparison: Dynamic Time Warping (DTW) of compartment curves
//
// ✨ Why choose epidem?
//
//   - Deterministic – the same inputs give bit-identical trajectories
//   - Explicit errors – sentinel errors wrapped with the offending value
//   - Concurrent where it pays – both policies run side by side via RunBoth
//
// Packages:
//
//	timegrid/  Grid, New, NewWithStep, FromPoints
//	seir/      State, Params, Transmission, Step, Simulate, Run, RunBoth
//	report/    Summarize, Compare, WriteCSV, WriteSummary, WriteComparison
//	dtw/       DTW distance with FullMatrix, TwoRows and NoMemory modes
//	cmd/seirsim CLI and HTTP server (-serve)
//
// Quick example:
//
//	base, distancing, err := seir.RunBoth(ctx, seir.DefaultConfig())
//	cmp, err := report.Compare(base, distancing)
//	report.WriteComparison(os.Stdout, cmp)
//
// The model:
//
//	S' = −T          E' = T − αE
//	I' = αE − γI     R' = γI
//
// with T = β·S·I (Base) or ρ·β·S·I (SocialDistancing).
package epidem
