package timegrid_test

import (
	"testing"

	"github.com/katalvlaran/epidem/timegrid"
)

// BenchmarkNewWithStep_Year benchmarks a one-year grid at dt=0.01.
func BenchmarkNewWithStep_Year(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := timegrid.NewWithStep(0, 365, 0.01); err != nil {
			b.Fatalf("NewWithStep failed: %v", err)
		}
	}
}

// BenchmarkFromPoints_Validate measures the uniformity scan on 10k points.
func BenchmarkFromPoints_Validate(b *testing.B) {
	g, err := timegrid.New(0, 100, 10000)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	pts := g.Points()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := timegrid.FromPoints(pts); err != nil {
			b.Fatalf("FromPoints failed: %v", err)
		}
	}
}
