package seriesclean

import (
	"gonum.org/v1/gonum/stat"

	"code.byted.org/microservice/tsclean/series"
)

// Quality reports what cleaning did to one series. It is a pure result
// record, never mutated after creation.
type Quality struct {
	PointsRemoved    int
	InvalidValues    int
	OutliersRemoved  int
	BoundsViolations int

	OscillationDetected bool
	OscillationScore    float64

	// TruncatedAtX is the x value the series was hard-cut at;
	// StableMaxX is the upper x bound of the stable range when the
	// data was kept. At most one of the two is set.
	TruncatedAtX *float64
	StableMaxX   *float64

	// distribution moments of the cleaned finite values
	MeanY     float64
	VarianceY float64
}

// Result .
type Result struct {
	Series      *series.Series
	Quality     Quality
	Instability series.InstabilityResult
}

func (q *Quality) fillMoments(y []float64) {
	finite := make([]float64, 0, len(y))
	for _, v := range y {
		if series.IsFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return
	}
	q.MeanY = stat.Mean(finite, nil)
	if len(finite) > 1 {
		q.VarianceY = stat.Variance(finite, nil)
	}
}
