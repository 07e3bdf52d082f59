package seir_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/epidem/seir"
)

// TestParams_Validate covers the physical ranges of every rate.
func TestParams_Validate(t *testing.T) {
	cases := []struct {
		name    string
		p       seir.Params
		wantErr bool
	}{
		{"defaults", seir.DefaultParams(), false},
		{"base without rho", seir.NewParams(0.2, 1.75, 0.5), false},
		{"zero rates", seir.Params{}, false},
		{"rho one", seir.NewDistancingParams(0.2, 1.75, 0.5, 1), false},
		{"negative alpha", seir.NewParams(-0.2, 1.75, 0.5), true},
		{"negative gamma", seir.NewParams(0.2, 1.75, -0.5), true},
		{"inf beta", seir.NewParams(0.2, math.Inf(1), 0.5), true},
		{"nan alpha", seir.NewParams(math.NaN(), 1.75, 0.5), true},
		{"negative rho", seir.NewDistancingParams(0.2, 1.75, 0.5, -0.1), true},
		{"rho above one", seir.NewDistancingParams(0.2, 1.75, 0.5, 1.01), true},
		{"nan rho", seir.NewDistancingParams(0.2, 1.75, 0.5, math.NaN()), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, seir.ErrInvalidParameters)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestParams_ReproductionNumber checks R0 under both policies.
func TestParams_ReproductionNumber(t *testing.T) {
	p := seir.DefaultParams()
	assert.InDelta(t, 3.5, p.ReproductionNumber(seir.PolicyBase), 1e-12)
	assert.InDelta(t, 1.75, p.ReproductionNumber(seir.PolicySocialDistancing), 1e-12)
	assert.True(t, math.IsInf(seir.NewParams(0.2, 1, 0).ReproductionNumber(seir.PolicyBase), 1))
}

// TestDefaultInitialState seeds one exposed individual.
func TestDefaultInitialState(t *testing.T) {
	s := seir.DefaultInitialState(10000)
	assert.InDelta(t, 0.9999, s.S, 1e-15)
	assert.InDelta(t, 0.0001, s.E, 1e-15)
	assert.Zero(t, s.I)
	assert.Zero(t, s.R)
	assert.InDelta(t, 1.0, s.Total(), 1e-15)

	assert.Equal(t, seir.State{S: 0, E: 1}, seir.DefaultInitialState(0), "n<1 treated as 1")
}

// TestState_Validate rejects negative and non-finite fractions.
func TestState_Validate(t *testing.T) {
	assert.NoError(t, seir.State{S: 1}.Validate())
	assert.NoError(t, seir.State{}.Validate(), "all-zero state is allowed")
	assert.ErrorIs(t, seir.State{R: -1e-9}.Validate(), seir.ErrInvalidState)
	assert.ErrorIs(t, seir.State{I: math.Inf(1)}.Validate(), seir.ErrInvalidState)
	assert.ErrorContains(t, seir.State{E: -1}.Validate(), "E=-1")
}
