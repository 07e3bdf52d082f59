package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsample_KeepsShortCurves(t *testing.T) {
	v := []float64{1, 2, 3}
	assert.Equal(t, v, downsample(v, 5))
	assert.Equal(t, v, downsample(v, 3))
}

func TestDownsample_EvenlySpacedWithEndpoints(t *testing.T) {
	v := make([]float64, 101)
	for i := range v {
		v[i] = float64(i)
	}

	got := downsample(v, 11)
	assert.Equal(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, got)
	assert.Len(t, downsample(v, 7), 7)
	assert.Equal(t, 100.0, downsample(v, 7)[6])
}
