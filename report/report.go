package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/epidem/dtw"
	"github.com/katalvlaran/epidem/seir"
)

// ErrNilTrajectory indicates a nil trajectory was passed to a report function.
var ErrNilTrajectory = errors.New("report: trajectory is nil")

// Summary condenses one trajectory.
type Summary struct {
	Policy            seir.Policy `json:"policy"`
	Rows              int         `json:"rows"`
	Horizon           float64     `json:"horizon"`
	R0                *float64    `json:"r0,omitempty"` // nil when gamma is 0
	PeakInfected      float64     `json:"peak_infected"`
	PeakTime          float64     `json:"peak_time"`
	Final             seir.State  `json:"final"`
	AttackRate        float64     `json:"attack_rate"` // 1 − S(end)/S(0)
	ConservationDrift float64     `json:"conservation_drift"`
}

// Comparison sets the SocialDistancing run against the Base run.
type Comparison struct {
	Base       Summary `json:"base"`
	Distancing Summary `json:"distancing"`

	PeakReduction  float64 `json:"peak_reduction"`  // base peak − distancing peak
	PeakDelay      float64 `json:"peak_delay"`      // distancing peak time − base peak time
	SusceptibleGap float64 `json:"susceptible_gap"` // distancing S(end) − base S(end)
	InfectedDTW    float64 `json:"infected_dtw"`    // DTW distance of the I curves
}

// Summarize computes the Summary of tr. The peak is the first row holding
// the maximum infected fraction.
func Summarize(tr *seir.Trajectory) (Summary, error) {
	if tr == nil {
		return Summary{}, ErrNilTrajectory
	}

	infected, err := tr.Column(seir.Infected)
	if err != nil {
		return Summary{}, err
	}
	peak := 0
	for i := 1; i < len(infected); i++ {
		if infected[i] > infected[peak] {
			peak = i
		}
	}
	peakTime, err := tr.Time(peak)
	if err != nil {
		return Summary{}, err
	}
	horizon, err := tr.Time(tr.Len() - 1)
	if err != nil {
		return Summary{}, err
	}

	init, final := tr.Initial(), tr.Final()
	attack := 0.0
	if init.S > 0 {
		attack = 1 - final.S/init.S
	}

	var r0 *float64
	if v := tr.Params().ReproductionNumber(tr.Policy()); finite(v) {
		r0 = &v
	}

	return Summary{
		Policy:            tr.Policy(),
		Rows:              tr.Len(),
		Horizon:           horizon,
		R0:                r0,
		PeakInfected:      infected[peak],
		PeakTime:          peakTime,
		Final:             final,
		AttackRate:        attack,
		ConservationDrift: tr.MaxConservationDrift(),
	}, nil
}

// DTWMaxPoints bounds the length of each curve handed to DTW. Longer curves
// are resampled to this many evenly spaced rows, so Compare costs at most
// DTWMaxPoints² cell updates whatever the grid length.
const DTWMaxPoints = 1001

// Compare summarizes both runs and measures how far distancing moves the
// infected curve. DTW runs in TwoRows mode since only the distance is needed;
// curves longer than DTWMaxPoints are resampled first.
func Compare(base, distancing *seir.Trajectory) (Comparison, error) {
	if base == nil || distancing == nil {
		return Comparison{}, ErrNilTrajectory
	}

	bs, err := Summarize(base)
	if err != nil {
		return Comparison{}, fmt.Errorf("base: %w", err)
	}
	ds, err := Summarize(distancing)
	if err != nil {
		return Comparison{}, fmt.Errorf("distancing: %w", err)
	}

	bi, err := base.Column(seir.Infected)
	if err != nil {
		return Comparison{}, err
	}
	di, err := distancing.Column(seir.Infected)
	if err != nil {
		return Comparison{}, err
	}
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	dist, _, err := dtw.DTW(downsample(bi, DTWMaxPoints), downsample(di, DTWMaxPoints), &opts)
	if err != nil {
		return Comparison{}, fmt.Errorf("infected curve distance: %w", err)
	}

	return Comparison{
		Base:           bs,
		Distancing:     ds,
		PeakReduction:  bs.PeakInfected - ds.PeakInfected,
		PeakDelay:      ds.PeakTime - bs.PeakTime,
		SusceptibleGap: ds.Final.S - bs.Final.S,
		InfectedDTW:    dist,
	}, nil
}

// downsample returns k evenly spaced samples of v, always keeping the first
// and last value. v is returned unchanged when it has at most k values.
func downsample(v []float64, k int) []float64 {
	n := len(v)
	if n <= k || k < 2 {
		return v
	}
	out := make([]float64, k)
	span := float64(n - 1)
	for i := range out {
		out[i] = v[int(math.Round(float64(i)*span/float64(k-1)))]
	}

	return out
}

// finite reports whether v can be printed as a plain number.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
