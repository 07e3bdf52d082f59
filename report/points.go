package report

import "github.com/katalvlaran/epidem/seir"

// Point is one trajectory row with its time, in the shape HTTP clients read.
type Point struct {
	T float64 `json:"t"`
	S float64 `json:"S"`
	E float64 `json:"E"`
	I float64 `json:"I"`
	R float64 `json:"R"`
}

// Sample returns every k-th row of tr plus the last one, the rows WriteCSV
// would emit with WithEvery(k). k < 1 is treated as 1.
func Sample(tr *seir.Trajectory, k int) ([]Point, error) {
	if tr == nil {
		return nil, ErrNilTrajectory
	}
	if k < 1 {
		k = 1
	}

	times := tr.Times()
	rows := tr.Rows()
	last := len(rows) - 1
	points := make([]Point, 0, last/k+2)
	for i, row := range rows {
		if i%k != 0 && i != last {
			continue
		}
		points = append(points, Point{T: times[i], S: row[0], E: row[1], I: row[2], R: row[3]})
	}

	return points, nil
}
