// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// curves, with an optional alignment path and reduced-memory modes.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone alignment between two sequences by
//	letting one of them stretch in time. Two epidemic curves with the same
//	shape but a delayed peak are close under DTW and far apart under a
//	point-wise distance, which is why the report package uses it to measure
//	how much a policy reshapes a compartment curve.
//
// ✨ Key features:
//   - FullMatrix mode: O(N·M) memory, supports the alignment path
//   - TwoRows mode:    O(M) memory, distance only
//   - NoMemory mode:   a single row plus one carried cell, distance only
//   - Sakoe–Chiba window (|i−j| ≤ Window, −1 = unlimited)
//   - SlopePenalty added to every non-diagonal step
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/epidem/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(baseInfected, distancingInfected, &opts)
//
// Complexity:
//
//   - Time:   O(N·M), O(N·W) with a window
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package dtw
