package seriesclean

import (
	"fmt"

	"code.byted.org/microservice/tsclean/series"
)

// MultiResult .
type MultiResult struct {
	X       []float64
	Ys      [][]float64
	Quality Quality
}

// CleanMulti cleans several y-series sharing one x axis. Removal
// decisions are intersected across ALL series — a point invalid,
// bounds-filtered or outlier-flagged in any series is dropped from
// every series — so the returned series share an identical filtered x
// axis. Fresh arrays are always returned.
func CleanMulti(x []float64, ys [][]float64, cfg *Config) (*MultiResult, error) {
	for k, y := range ys {
		if len(y) != len(x) {
			return nil, fmt.Errorf("series %v length mismatch: %v != %v", k, len(y), len(x))
		}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	n0 := len(x)
	var q Quality

	// invalid values
	work := make([][]float64, len(ys))
	drop := make([]bool, n0)
	if cfg.InvalidValues == series.InvalidRemove {
		for k, y := range ys {
			work[k] = append([]float64(nil), y...)
			for i, v := range y {
				if !series.IsFinite(v) {
					drop[i] = true
					q.InvalidValues++
				}
			}
		}
	} else {
		for k, y := range ys {
			cleaned, _, invalid := series.HandleInvalidValues(y, cfg.InvalidValues)
			work[k] = append([]float64(nil), cleaned...)
			q.InvalidValues += invalid
		}
	}
	xw := series.SelectValues(x, keptIndices(drop))
	for k := range work {
		work[k] = series.SelectValues(work[k], keptIndices(drop))
	}

	// physical bounds
	if cfg.Bounds != nil {
		filterDrop := make([]bool, len(xw))
		for k := range work {
			bounded, violations, filtered := series.ApplyBounds(xw, work[k], cfg.Bounds)
			work[k] = bounded
			q.BoundsViolations += violations
			for _, i := range filtered {
				filterDrop[i] = true
			}
		}
		kept := keptIndices(filterDrop)
		xw = series.SelectValues(xw, kept)
		for k := range work {
			work[k] = series.SelectValues(work[k], kept)
		}
	}

	// local outliers
	if cfg.LocalOutliers != nil {
		outlierDrop := make([]bool, len(xw))
		for k := range work {
			r := series.RemoveLocalOutliers(work[k], cfg.LocalOutliers)
			for _, i := range r.Removed {
				outlierDrop[i] = true
			}
		}
		kept := keptIndices(outlierDrop)
		q.OutliersRemoved = len(xw) - len(kept)
		xw = series.SelectValues(xw, kept)
		for k := range work {
			work[k] = series.SelectValues(work[k], kept)
		}
	}

	// smoothing
	if cfg.Smooth != nil {
		for k := range work {
			work[k] = series.Smooth(xw, work[k], cfg.Smooth)
		}
	}

	q.PointsRemoved = n0 - len(xw)
	all := make([]float64, 0, len(xw)*len(work))
	for _, y := range work {
		all = append(all, y...)
	}
	q.fillMoments(all)
	logger.Debugf("cleaned %v series: n=%v->%v invalid=%v violations=%v",
		len(work), n0, len(xw), q.InvalidValues, q.BoundsViolations)

	return &MultiResult{X: xw, Ys: work, Quality: q}, nil
}

func keptIndices(drop []bool) []int {
	kept := make([]int, 0, len(drop))
	for i, d := range drop {
		if !d {
			kept = append(kept, i)
		}
	}
	return kept
}
