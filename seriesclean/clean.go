package seriesclean

import (
	"fmt"

	"code.byted.org/microservice/tsclean/series"
	"code.byted.org/microservice/tsclean/utils"
)

var logger = utils.NewLogger("seriesclean")

// SetLogger replaces the package logger; pass utils.NopLogger() to
// silence it.
func SetLogger(l utils.Logger) {
	logger = l
}

// Clean runs the full single-series pipeline: invalid-value handling,
// physical bounds, local outlier removal, smoothing, instability
// detection. Every filtering step keeps the parallel arrays
// (X/Y/metadata/color/size) index-synchronized. With
// TruncationHardCut a detected instability truncates the series at the
// onset; otherwise the onset only annotates the quality report.
func Clean(s *series.Series, cfg *Config) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("nil series")
	}
	if err := checkParallel(s); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out := s
	if !cfg.inPlace() {
		out = s.Clone()
	}
	n0 := out.N()

	var q Quality

	// invalid values
	cleaned, removed, invalid := series.HandleInvalidValues(out.Y, cfg.InvalidValues)
	q.InvalidValues = invalid
	if len(removed) > 0 {
		out.Select(complement(removed, out.N()))
	} else {
		out.Y = cleaned
	}

	// physical bounds
	if cfg.Bounds != nil {
		bounded, violations, filtered := series.ApplyBounds(out.X, out.Y, cfg.Bounds)
		out.Y = bounded
		q.BoundsViolations = violations
		if len(filtered) > 0 {
			out.Select(complement(filtered, out.N()))
		}
	}

	// local outliers
	if cfg.LocalOutliers != nil {
		r := series.RemoveLocalOutliers(out.Y, cfg.LocalOutliers)
		q.OutliersRemoved = len(r.Removed)
		if len(r.Removed) > 0 {
			out.Select(r.Kept)
		}
	}

	// smoothing
	if cfg.Smooth != nil {
		out.Y = series.Smooth(out.X, out.Y, cfg.Smooth)
	}

	// instability detection and truncation
	inst := series.DetectInstability(out.X, out.Y, cfg.instabilityOptions())
	q.OscillationDetected = inst.Detected
	q.OscillationScore = inst.Score
	if inst.Detected && inst.OnsetIndex >= 0 {
		onsetX := out.X[inst.OnsetIndex]
		if cfg.TruncationMode == TruncationHardCut {
			out.Truncate(inst.OnsetIndex)
			q.TruncatedAtX = &onsetX
		} else {
			q.StableMaxX = &onsetX
		}
		logger.Debugf("instability onset=%v x=%v score=%v mode=%v",
			inst.OnsetIndex, onsetX, inst.Score, cfg.TruncationMode)
	}

	q.PointsRemoved = n0 - out.N()
	q.fillMoments(out.Y)
	logger.Debugf("cleaned series: n=%v->%v invalid=%v outliers=%v violations=%v",
		n0, out.N(), q.InvalidValues, q.OutliersRemoved, q.BoundsViolations)

	return &Result{Series: out, Quality: q, Instability: inst}, nil
}

func checkParallel(s *series.Series) error {
	n := len(s.Y)
	if len(s.X) != n {
		return fmt.Errorf("x/y length mismatch: %v != %v", len(s.X), n)
	}
	if s.ColorValues != nil && len(s.ColorValues) != n {
		return fmt.Errorf("color_values length mismatch: %v != %v", len(s.ColorValues), n)
	}
	if s.SizeValues != nil && len(s.SizeValues) != n {
		return fmt.Errorf("size_values length mismatch: %v != %v", len(s.SizeValues), n)
	}
	if s.Metadata.PerPoint() && s.Metadata.Len() != n {
		return fmt.Errorf("metadata length mismatch: %v != %v", s.Metadata.Len(), n)
	}
	return nil
}

// complement the ascending indices of [0,n) not present in the
// ascending removed list
func complement(removed []int, n int) []int {
	kept := make([]int, 0, n-len(removed))
	j := 0
	for i := 0; i < n; i++ {
		if j < len(removed) && removed[j] == i {
			j++
			continue
		}
		kept = append(kept, i)
	}
	return kept
}
