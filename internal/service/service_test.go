package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epidem/internal/logging"
	"github.com/katalvlaran/epidem/internal/observability"
	"github.com/katalvlaran/epidem/seir"
)

func newRunner(t *testing.T, opts ...Option) (*Runner, *observability.Collector) {
	t.Helper()
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	return New(logging.Noop(), append([]Option{WithMetrics(collector)}, opts...)...), collector
}

func TestSimulateRecordsRun(t *testing.T) {
	r, m := newRunner(t)

	traj, err := r.Simulate(context.Background(), seir.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1001, traj.Len())
	assert.InDelta(t, 0.03326, traj.Final().S, 1e-4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("base", observability.OutcomeOK)))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.Steps.WithLabelValues("base")))
}

func TestSimulateRecordsFailure(t *testing.T) {
	r, m := newRunner(t)

	cfg := seir.DefaultConfig()
	cfg.Params.Beta = -1
	traj, err := r.Simulate(context.Background(), cfg)
	assert.ErrorIs(t, err, seir.ErrInvalidParameters)
	assert.Nil(t, traj)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("base", observability.OutcomeError)))
}

func TestSimulateHonorsCancelledContext(t *testing.T) {
	r, _ := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Simulate(ctx, seir.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaxStepsRejectsLongGrids(t *testing.T) {
	r, _ := newRunner(t, WithMaxSteps(500))

	_, err := r.Simulate(context.Background(), seir.DefaultConfig())
	assert.ErrorIs(t, err, ErrTooManySteps)

	_, _, _, err = r.Compare(context.Background(), seir.DefaultConfig())
	assert.ErrorIs(t, err, ErrTooManySteps)

	cfg := seir.DefaultConfig()
	cfg.Dt = 0.25
	_, err = r.Simulate(context.Background(), cfg)
	assert.NoError(t, err)
}

func TestWithMaxStepsPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { WithMaxSteps(0) })
}

func TestCompareSummarizesBothPolicies(t *testing.T) {
	r, m := newRunner(t)

	cmp, base, distancing, err := r.Compare(context.Background(), seir.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, base)
	require.NotNil(t, distancing)

	assert.Equal(t, seir.PolicyBase, base.Policy())
	assert.Equal(t, seir.PolicySocialDistancing, distancing.Policy())
	assert.Greater(t, cmp.PeakReduction, 0.0)
	assert.Greater(t, cmp.PeakDelay, 0.0)
	assert.InDelta(t, 0.45391-0.03326, cmp.SusceptibleGap, 1e-3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("base", observability.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("social_distancing", observability.OutcomeOK)))
}

func TestNewWithoutMetrics(t *testing.T) {
	r := New(nil)
	_, err := r.Simulate(context.Background(), seir.DefaultConfig())
	assert.NoError(t, err)
}

func TestCompareLongGridStaysFast(t *testing.T) {
	r, _ := newRunner(t)
	cfg := seir.DefaultConfig()
	cfg.Dt = 0.002 // 50000 steps

	start := time.Now()
	cmp, base, _, err := r.Compare(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 50001, base.Len())
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Greater(t, cmp.InfectedDTW, 0.0)
}
