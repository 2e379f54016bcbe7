package seriesclean

import (
	"fmt"

	"code.byted.org/microservice/tsclean/series"
)

// XYZResult .
type XYZResult struct {
	X       []float64
	Y       []float64
	Z       []float64
	Quality Quality
}

// CleanXYZ cleans three correlated arrays with the same intersection
// logic as CleanMulti: in remove mode a point non-finite in any of
// x/y/z is dropped from all three. Bounds and outlier filtering run on
// the primary axis selected by cfg.BoundsAxis (y by default); dynamic
// bound functions evaluate against the x values remaining after the
// invalid-value stage. Smoothing applies to y and z only — x is the
// independent variable and is never smoothed.
func CleanXYZ(x, y, z []float64, cfg *Config) (*XYZResult, error) {
	if len(y) != len(x) || len(z) != len(x) {
		return nil, fmt.Errorf("x/y/z length mismatch: %v/%v/%v", len(x), len(y), len(z))
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	n0 := len(x)
	var q Quality

	xw := append([]float64(nil), x...)
	yw := append([]float64(nil), y...)
	zw := append([]float64(nil), z...)

	// invalid values
	if cfg.InvalidValues == series.InvalidRemove {
		drop := make([]bool, n0)
		for i := 0; i < n0; i++ {
			for _, v := range [3]float64{xw[i], yw[i], zw[i]} {
				if !series.IsFinite(v) {
					drop[i] = true
					q.InvalidValues++
				}
			}
		}
		kept := keptIndices(drop)
		xw = series.SelectValues(xw, kept)
		yw = series.SelectValues(yw, kept)
		zw = series.SelectValues(zw, kept)
	} else {
		var invalid int
		yw, _, invalid = series.HandleInvalidValues(yw, cfg.InvalidValues)
		q.InvalidValues += invalid
		zw, _, invalid = series.HandleInvalidValues(zw, cfg.InvalidValues)
		q.InvalidValues += invalid
	}

	primary := &yw
	switch cfg.BoundsAxis {
	case "z":
		primary = &zw
	case "x":
		primary = &xw
	}

	// physical bounds on the primary axis
	if cfg.Bounds != nil {
		bounded, violations, filtered := series.ApplyBounds(xw, *primary, cfg.Bounds)
		*primary = bounded
		q.BoundsViolations = violations
		if len(filtered) > 0 {
			kept := complement(filtered, len(xw))
			xw = series.SelectValues(xw, kept)
			yw = series.SelectValues(yw, kept)
			zw = series.SelectValues(zw, kept)
		}
	}

	// local outliers on the primary axis
	if cfg.LocalOutliers != nil {
		r := series.RemoveLocalOutliers(*primary, cfg.LocalOutliers)
		q.OutliersRemoved = len(r.Removed)
		if len(r.Removed) > 0 {
			xw = series.SelectValues(xw, r.Kept)
			yw = series.SelectValues(yw, r.Kept)
			zw = series.SelectValues(zw, r.Kept)
		}
	}

	// smoothing: dependent axes only
	if cfg.Smooth != nil {
		yw = series.Smooth(xw, yw, cfg.Smooth)
		zw = series.Smooth(xw, zw, cfg.Smooth)
	}

	q.PointsRemoved = n0 - len(xw)
	q.fillMoments(yw)

	return &XYZResult{X: xw, Y: yw, Z: zw, Quality: q}, nil
}
