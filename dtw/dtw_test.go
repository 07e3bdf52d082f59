package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epidem/dtw"
)

// bump returns a triangular curve of length n peaking at index peak.
func bump(n, peak int, height float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		d := math.Abs(float64(i - peak))
		if v := height - d*height/10; v > 0 {
			out[i] = v
		}
	}

	return out
}

// TestDTW_InputErrors covers the sentinel error paths in check order.
func TestDTW_InputErrors(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW(nil, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
	_, _, err = dtw.DTW([]float64{1}, []float64{}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	bad := []dtw.Options{
		{Window: -2},
		{Window: -1, SlopePenalty: -0.5},
		{Window: -1, SlopePenalty: math.Inf(1)},
		{Window: -1, MemoryMode: dtw.MemoryMode(9)},
	}
	for _, o := range bad {
		o := o
		_, _, err = dtw.DTW([]float64{1}, []float64{1}, &o)
		assert.ErrorIs(t, err, dtw.ErrBadInput, "%+v", o)
	}

	_, _, err = dtw.DTW([]float64{1, math.NaN()}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
		o := dtw.DefaultOptions()
		o.ReturnPath = true
		o.MemoryMode = mode
		_, _, err = dtw.DTW([]float64{1, 2}, []float64{1, 2}, &o)
		assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
	}
}

// TestDTW_IdenticalCurves yields zero distance and, by default, no path.
func TestDTW_IdenticalCurves(t *testing.T) {
	a := bump(30, 12, 0.1)
	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Zero(t, dist)
	assert.Nil(t, path)
}

// TestDTW_StretchedPath checks a repeated sample aligns at zero cost and the
// path runs corner to corner.
func TestDTW_StretchedPath(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, &opts)
	require.NoError(t, err)
	assert.Zero(t, dist)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_PathIsMonotone verifies every step advances by at most one in each index.
func TestDTW_PathIsMonotone(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	a, b := bump(40, 10, 0.1), bump(50, 30, 0.05)

	_, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, dtw.Coord{I: 39, J: 49}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		di, dj := path[k].I-path[k-1].I, path[k].J-path[k-1].J
		assert.True(t, di >= 0 && di <= 1 && dj >= 0 && dj <= 1 && di+dj > 0, "step %d: %v→%v", k, path[k-1], path[k])
	}
}

// TestDTW_WindowBlocksMismatch verifies Window=0 with unequal lengths is unreachable.
func TestDTW_WindowBlocksMismatch(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.ReturnPath = true

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
	assert.Nil(t, path, "no path for an unreachable corner")
}

// TestDTW_SlopePenalty verifies each non-diagonal step costs SlopePenalty.
func TestDTW_SlopePenalty(t *testing.T) {
	a, b := []float64{1, 2, 3}, []float64{1, 1, 2, 3}
	opts := dtw.DefaultOptions()

	free, _, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Zero(t, free)

	opts.SlopePenalty = 1
	penalized, _, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, penalized)
}

// TestDTW_ModesAgree verifies all memory modes return the same distance.
func TestDTW_ModesAgree(t *testing.T) {
	a, b := bump(60, 20, 0.1), bump(45, 30, 0.03)
	for _, window := range []int{-1, 5, 20} {
		ref := dtw.DefaultOptions()
		ref.Window = window
		want, _, err := dtw.DTW(a, b, &ref)
		require.NoError(t, err)

		for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
			o := ref
			o.MemoryMode = mode
			got, _, err := dtw.DTW(a, b, &o)
			require.NoError(t, err)
			if math.IsInf(want, 1) {
				assert.True(t, math.IsInf(got, 1), "window=%d mode=%d", window, mode)
				continue
			}
			assert.InDelta(t, want, got, 1e-12, "window=%d mode=%d", window, mode)
		}
	}
}

// TestDTW_DelayedPeakIsCheap verifies a time-shifted curve is far closer under
// DTW than under a point-wise L1 distance.
func TestDTW_DelayedPeakIsCheap(t *testing.T) {
	a, b := bump(80, 20, 0.1), bump(80, 45, 0.1)

	var l1 float64
	for i := range a {
		l1 += math.Abs(a[i] - b[i])
	}
	dist, _, err := dtw.DTW(a, b, nil)
	require.NoError(t, err)
	assert.Less(t, dist, l1/10)
}
