package dtw

import "errors"

// Sentinel errors returned by DTW.
var (
	// ErrEmptyInput indicates one or both sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < −1, negative or
	// non-finite SlopePenalty, unknown MemoryMode) or a NaN/Inf sample.
	ErrBadInput = errors.New("dtw: invalid input")

	// ErrPathNeedsMatrix indicates ReturnPath was requested outside FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its cost matrix.
type MemoryMode int

const (
	// FullMatrix keeps the entire (n+1)×(m+1) matrix; supports ReturnPath.
	FullMatrix MemoryMode = iota

	// TwoRows keeps the previous and current rows only.
	TwoRows

	// NoMemory keeps a single row and carries the diagonal cell in a scalar.
	NoMemory
)

// Coord is one cell (I into a, J into b) of the alignment path, 0-based.
type Coord struct {
	I, J int
}

// Options configures DTW.
//
//   - Window       Sakoe–Chiba band |i−j| ≤ Window; −1 disables it.
//   - SlopePenalty cost added to each insertion/deletion step (≥ 0).
//   - ReturnPath   backtrack and return the optimal path (FullMatrix only).
//   - MemoryMode   FullMatrix, TwoRows or NoMemory.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unlimited window, zero penalty, no path, FullMatrix.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
