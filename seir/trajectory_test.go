package seir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epidem/seir"
	"github.com/katalvlaran/epidem/timegrid"
)

// smallTrajectory integrates three steps of the reference rates.
func smallTrajectory(t *testing.T) *seir.Trajectory {
	t.Helper()
	g, err := timegrid.New(0, 0.3, 3)
	require.NoError(t, err)
	traj, err := seir.Simulate(seir.State{S: 0.9, E: 0.05, I: 0.05}, seir.DefaultParams(), seir.Base{}, g)
	require.NoError(t, err)

	return traj
}

// TestTrajectory_RowsFieldOrder verifies Rows uses S, E, I, R order.
func TestTrajectory_RowsFieldOrder(t *testing.T) {
	traj := smallTrajectory(t)
	rows := traj.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, [4]float64{0.9, 0.05, 0.05, 0}, rows[0])

	for i, row := range rows {
		s, err := traj.At(i)
		require.NoError(t, err)
		assert.Equal(t, s.Array(), row)
	}
}

// TestTrajectory_ColumnsAreCopies verifies callers cannot mutate the trajectory.
func TestTrajectory_ColumnsAreCopies(t *testing.T) {
	traj := smallTrajectory(t)

	col, err := traj.Column(seir.Infected)
	require.NoError(t, err)
	col[0] = 99

	again, err := traj.Column(seir.Infected)
	require.NoError(t, err)
	assert.Equal(t, 0.05, again[0])

	times := traj.Times()
	times[0] = -1
	t0, err := traj.Time(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, t0)
}

// TestTrajectory_Bounds covers out-of-range access.
func TestTrajectory_Bounds(t *testing.T) {
	traj := smallTrajectory(t)

	_, err := traj.At(4)
	assert.ErrorIs(t, err, seir.ErrIndexOutOfRange)
	_, err = traj.Time(-1)
	assert.ErrorIs(t, err, seir.ErrIndexOutOfRange)
	_, err = traj.Column(seir.Compartment(7))
	assert.ErrorIs(t, err, seir.ErrUnknownCompartment)
}

// TestTrajectory_Metadata exposes the policy and rates used.
func TestTrajectory_Metadata(t *testing.T) {
	traj := smallTrajectory(t)
	assert.Equal(t, seir.PolicyBase, traj.Policy())
	assert.Equal(t, seir.DefaultParams(), traj.Params())
	assert.Equal(t, "I", seir.Infected.String())
	assert.Equal(t, "Compartment(9)", seir.Compartment(9).String())
}
