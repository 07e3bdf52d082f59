package dtw

import (
	"fmt"
	"math"
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Recurrence (1-based, D[0][0]=0, D[i][0]=D[0][j]=+Inf):
//
//	D[i][j] = |a[i]−b[j]| + min(D[i−1][j−1], D[i−1][j]+p, D[i][j−1]+p)
//
// where p is SlopePenalty; cells outside the window are +Inf. The distance
// is D[n][m], which is +Inf when the window makes (n,m) unreachable.
//
// Returns (distance, path, error). path is nil unless opts.ReturnPath is set
// and the distance is finite. A nil opts uses DefaultOptions.
//
// Errors (checked in order):
//   - ErrEmptyInput      a or b is empty.
//   - ErrBadInput        Window < −1, SlopePenalty < 0 or non-finite,
//     unknown MemoryMode, or a NaN/±Inf sample.
//   - ErrPathNeedsMatrix ReturnPath with a mode other than FullMatrix.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	// 1) Resolve and validate options.
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := validate(a, b, cfg); err != nil {
		return 0, nil, err
	}

	// 2) Fill the cost matrix in the requested memory mode.
	switch cfg.MemoryMode {
	case TwoRows:
		return twoRows(a, b, cfg), nil, nil
	case NoMemory:
		return singleRow(a, b, cfg), nil, nil
	}

	dp := fullMatrix(a, b, cfg)
	dist := dp[n][m]
	if !cfg.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	// 3) Backtrack the optimal path.
	return dist, backtrack(dp, cfg.SlopePenalty), nil
}

// validate checks options and samples.
func validate(a, b []float64, cfg Options) error {
	if cfg.Window < -1 {
		return fmt.Errorf("%w: Window=%d must be ≥ -1", ErrBadInput, cfg.Window)
	}
	if math.IsNaN(cfg.SlopePenalty) || math.IsInf(cfg.SlopePenalty, 0) || cfg.SlopePenalty < 0 {
		return fmt.Errorf("%w: SlopePenalty=%v must be finite and ≥ 0", ErrBadInput, cfg.SlopePenalty)
	}
	switch cfg.MemoryMode {
	case FullMatrix, TwoRows, NoMemory:
	default:
		return fmt.Errorf("%w: MemoryMode=%d", ErrBadInput, int(cfg.MemoryMode))
	}
	if cfg.ReturnPath && cfg.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: a[%d]=%v", ErrBadInput, i, v)
		}
	}
	for j, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: b[%d]=%v", ErrBadInput, j, v)
		}
	}

	return nil
}

// outside reports whether (i, j) lies outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	if window < 0 {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d > window
}

// fullMatrix fills and returns the (n+1)×(m+1) cost matrix.
func fullMatrix(a, b []float64, cfg Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	pen := cfg.SlopePenalty

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, cfg.Window) {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + min3(dp[i-1][j-1], dp[i-1][j]+pen, dp[i][j-1]+pen)
		}
	}

	return dp
}

// twoRows computes the distance keeping only the previous and current rows.
func twoRows(a, b []float64, cfg Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	pen := cfg.SlopePenalty

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, cfg.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min3(prev[j-1], prev[j]+pen, curr[j-1]+pen)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// singleRow computes the distance in one row, carrying D[i−1][j−1] in diag.
func singleRow(a, b []float64, cfg Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	pen := cfg.SlopePenalty

	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if outside(i, j, cfg.Window) {
				row[j] = inf
			} else {
				row[j] = math.Abs(a[i-1]-b[j-1]) + min3(diag, up+pen, row[j-1]+pen)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n,m) to (1,1) following the predecessor that
// produced each cell. Ties prefer the diagonal, then the step in a.
func backtrack(dp [][]float64, pen float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+pen, dp[i][j-1]+pen
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}

	// reverse in place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}

	return c
}
