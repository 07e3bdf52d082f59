package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epidem/seir"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0.2, cfg.Model.Alpha)
	assert.Equal(t, 1.75, cfg.Model.Beta)
	assert.Equal(t, 0.5, cfg.Model.Gamma)
	assert.Equal(t, 0.5, cfg.Model.Rho)
	assert.Equal(t, 10000, cfg.Model.Population)
	assert.Equal(t, PolicyBoth, cfg.Model.Policy)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Tracing.Enabled)

	sc, err := cfg.Scenario()
	require.NoError(t, err)
	want := seir.DefaultConfig()
	assert.Equal(t, want.Params, sc.Params)
	assert.Equal(t, want.Initial, sc.Initial)
	assert.Equal(t, want.End, sc.End)
	assert.Equal(t, want.Dt, sc.Dt)
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SEIRSIM_MODEL_RHO":       "0.25",
		"SEIRSIM_MODEL_POLICY":    "social_distancing",
		"SEIRSIM_LOG_FORMAT":      "json",
		"SEIRSIM_TRACING_ENABLED": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Model.Rho)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Tracing.Enabled)

	sc, err := cfg.Scenario()
	require.NoError(t, err)
	assert.Equal(t, seir.PolicySocialDistancing, sc.Policy)
}

func TestLoadFromRejectsOutOfRange(t *testing.T) {
	cases := map[string]map[string]string{
		"rho above one":     {"SEIRSIM_MODEL_RHO": "1.5"},
		"negative beta":     {"SEIRSIM_MODEL_BETA": "-1"},
		"zero dt":           {"SEIRSIM_MODEL_DT": "0"},
		"unknown policy":    {"SEIRSIM_MODEL_POLICY": "lockdown"},
		"bad log format":    {"SEIRSIM_LOG_FORMAT": "xml"},
		"not a number":      {"SEIRSIM_MODEL_ALPHA": "fast"},
		"zero population":   {"SEIRSIM_MODEL_POPULATION": "0"},
		"non-numeric port":  {"SEIRSIM_SERVER_PORT": "http"},
		"sample ratio high": {"SEIRSIM_TRACING_SAMPLE_RATIO": "2"},
	}
	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadFrom(environ)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
