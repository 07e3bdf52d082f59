package dtw_test

import (
	"testing"

	"github.com/katalvlaran/epidem/dtw"
)

// benchmarkDTW compares two curves of lengths n and m under opts.
func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	a, c := bump(n, n/3, 0.1), bump(m, m/2, 0.05)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(a, c, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrix1001 compares two 100-day, dt=0.1 curves with the full matrix.
func BenchmarkDTW_FullMatrix1001(b *testing.B) {
	benchmarkDTW(b, 1001, 1001, dtw.DefaultOptions())
}

// BenchmarkDTW_TwoRows1001 compares the same curves keeping two rows.
func BenchmarkDTW_TwoRows1001(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkDTW(b, 1001, 1001, opts)
}

// BenchmarkDTW_NoMemory1001 compares the same curves keeping a single row.
func BenchmarkDTW_NoMemory1001(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.NoMemory
	benchmarkDTW(b, 1001, 1001, opts)
}

// BenchmarkDTW_Windowed1001 restricts the band to ±50 samples (5 days).
func BenchmarkDTW_Windowed1001(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 50
	benchmarkDTW(b, 1001, 1001, opts)
}
