package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/epidem/seir"
)

const panicEveryInvalid = "report: WithEvery: k must be ≥ 1"

// CSVOption configures WriteCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	every int // write every k-th row; the last row is always written
}

// WithEvery writes every k-th row (plus the last one) instead of all rows.
// It panics if k < 1.
func WithEvery(k int) CSVOption {
	if k < 1 {
		panic(panicEveryInvalid)
	}

	return func(o *csvOptions) { o.every = k }
}

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"t", "S", "E", "I", "R"}

// WriteCSV writes tr as CSV: header t,S,E,I,R and one row per grid point
// in grid order. Values use the shortest representation that round-trips.
func WriteCSV(w io.Writer, tr *seir.Trajectory, opts ...CSVOption) error {
	if tr == nil {
		return ErrNilTrajectory
	}
	cfg := csvOptions{every: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	times := tr.Times()
	rows := tr.Rows()
	last := len(rows) - 1
	record := make([]string, len(CSVHeader))
	for i, row := range rows {
		if i%cfg.every != 0 && i != last {
			continue
		}
		record[0] = formatFloat(times[i])
		for c, v := range row {
			record[c+1] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary writes a Summary as an aligned two-column table.
func WriteSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeSummaryRows(tw, s)

	return tw.Flush()
}

// WriteComparison writes both summaries side by side followed by the deltas.
func WriteComparison(w io.Writer, c Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "metric\t%s\t%s\n", c.Base.Policy, c.Distancing.Policy)
	fmt.Fprintf(tw, "R0\t%s\t%s\n", formatR0(c.Base.R0), formatR0(c.Distancing.R0))
	fmt.Fprintf(tw, "peak I\t%.4f\t%.4f\n", c.Base.PeakInfected, c.Distancing.PeakInfected)
	fmt.Fprintf(tw, "peak day\t%.1f\t%.1f\n", c.Base.PeakTime, c.Distancing.PeakTime)
	fmt.Fprintf(tw, "final S\t%.4f\t%.4f\n", c.Base.Final.S, c.Distancing.Final.S)
	fmt.Fprintf(tw, "final R\t%.4f\t%.4f\n", c.Base.Final.R, c.Distancing.Final.R)
	fmt.Fprintf(tw, "attack rate\t%.4f\t%.4f\n", c.Base.AttackRate, c.Distancing.AttackRate)
	fmt.Fprintf(tw, "peak reduction\t%.4f\t\n", c.PeakReduction)
	fmt.Fprintf(tw, "peak delay (days)\t%.1f\t\n", c.PeakDelay)
	fmt.Fprintf(tw, "susceptible gap\t%.4f\t\n", c.SusceptibleGap)
	fmt.Fprintf(tw, "infected DTW\t%.4f\t\n", c.InfectedDTW)

	return tw.Flush()
}

func writeSummaryRows(w io.Writer, s Summary) {
	fmt.Fprintf(w, "policy\t%s\n", s.Policy)
	fmt.Fprintf(w, "rows\t%d\n", s.Rows)
	fmt.Fprintf(w, "horizon\t%.1f\n", s.Horizon)
	fmt.Fprintf(w, "R0\t%s\n", formatR0(s.R0))
	fmt.Fprintf(w, "peak I\t%.4f (day %.1f)\n", s.PeakInfected, s.PeakTime)
	fmt.Fprintf(w, "final\tS=%.4f E=%.4f I=%.4f R=%.4f\n", s.Final.S, s.Final.E, s.Final.I, s.Final.R)
	fmt.Fprintf(w, "attack rate\t%.4f\n", s.AttackRate)
	fmt.Fprintf(w, "conservation drift\t%.2e\n", s.ConservationDrift)
}

func formatR0(r0 *float64) string {
	if r0 == nil {
		return "inf"
	}

	return strconv.FormatFloat(*r0, 'f', 2, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
