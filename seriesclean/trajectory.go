package seriesclean

import (
	"fmt"
	"sort"

	"code.byted.org/microservice/tsclean/series"
)

// TrajectoryResult .
type TrajectoryResult struct {
	Props   map[string][]float64
	Quality Quality
}

// CleanTrajectory generalizes CleanMulti to an arbitrary named set of
// property arrays sharing one independent axis. The axis is the
// property named cfg.StepKey ("Step" by default), synthesized as a
// 0..n-1 index sequence when absent; it is part of the returned map
// and is never smoothed even when present as a named property.
// Invalid-value intersection spans all properties, the axis included.
func CleanTrajectory(props map[string][]float64, cfg *Config) (*TrajectoryResult, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	stepKey := cfg.stepKey()

	n := -1
	for name, vals := range props {
		if n < 0 {
			n = len(vals)
			continue
		}
		if len(vals) != n {
			return nil, fmt.Errorf("property %v length mismatch: %v != %v", name, len(vals), n)
		}
	}
	if n < 0 {
		return nil, fmt.Errorf("no properties")
	}

	// deterministic property order for the per-stage loops
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	work := make(map[string][]float64, len(props)+1)
	for _, name := range names {
		work[name] = append([]float64(nil), props[name]...)
	}
	if _, ok := work[stepKey]; !ok {
		axis := make([]float64, n)
		for i := range axis {
			axis[i] = float64(i)
		}
		work[stepKey] = axis
		names = append(names, stepKey)
		sort.Strings(names)
	}

	var q Quality

	// invalid values, intersected across every property
	if cfg.InvalidValues == series.InvalidRemove {
		drop := make([]bool, n)
		for _, name := range names {
			for i, v := range work[name] {
				if !series.IsFinite(v) {
					drop[i] = true
					q.InvalidValues++
				}
			}
		}
		kept := keptIndices(drop)
		for _, name := range names {
			work[name] = series.SelectValues(work[name], kept)
		}
	} else {
		for _, name := range names {
			cleaned, _, invalid := series.HandleInvalidValues(work[name], cfg.InvalidValues)
			work[name] = cleaned
			q.InvalidValues += invalid
		}
	}
	axis := work[stepKey]

	// physical bounds per dependent property, filter drops intersected
	if cfg.Bounds != nil {
		filterDrop := make([]bool, len(axis))
		for _, name := range names {
			if name == stepKey {
				continue
			}
			bounded, violations, filtered := series.ApplyBounds(axis, work[name], cfg.Bounds)
			work[name] = bounded
			q.BoundsViolations += violations
			for _, i := range filtered {
				filterDrop[i] = true
			}
		}
		kept := keptIndices(filterDrop)
		for _, name := range names {
			work[name] = series.SelectValues(work[name], kept)
		}
		axis = work[stepKey]
	}

	// local outliers per dependent property, removals intersected
	if cfg.LocalOutliers != nil {
		outlierDrop := make([]bool, len(axis))
		for _, name := range names {
			if name == stepKey {
				continue
			}
			r := series.RemoveLocalOutliers(work[name], cfg.LocalOutliers)
			for _, i := range r.Removed {
				outlierDrop[i] = true
			}
		}
		kept := keptIndices(outlierDrop)
		q.OutliersRemoved = len(axis) - len(kept)
		for _, name := range names {
			work[name] = series.SelectValues(work[name], kept)
		}
		axis = work[stepKey]
	}

	// smoothing: never the axis
	if cfg.Smooth != nil {
		for _, name := range names {
			if name == stepKey {
				continue
			}
			work[name] = series.Smooth(axis, work[name], cfg.Smooth)
		}
	}

	q.PointsRemoved = n - len(axis)
	logger.Debugf("cleaned trajectory: props=%v n=%v->%v invalid=%v",
		len(names), n, len(axis), q.InvalidValues)

	return &TrajectoryResult{Props: work, Quality: q}, nil
}
