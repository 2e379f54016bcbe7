package series

import "math"

// outlier removal defaults
const (
	DefaultOutlierHalfWindow    = 7
	DefaultOutlierMADThreshold  = 2.0
	DefaultOutlierMaxIterations = 5
)

// OutlierOptions .
type OutlierOptions struct {
	HalfWindow    int     `yaml:"HalfWindow"`    // window half-width, default 7
	MADThreshold  float64 `yaml:"MADThreshold"`  // MAD multiplier, default 2.0
	MaxIterations int     `yaml:"MaxIterations"` // default 5
}

func (op *OutlierOptions) withDefaults() OutlierOptions {
	o := OutlierOptions{}
	if op != nil {
		o = *op
	}
	if o.HalfWindow <= 0 {
		o.HalfWindow = DefaultOutlierHalfWindow
	}
	if o.MADThreshold <= 0 {
		o.MADThreshold = DefaultOutlierMADThreshold
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultOutlierMaxIterations
	}
	return o
}

// OutlierResult .
type OutlierResult struct {
	Kept       []int // retained original indices, ascending
	Removed    []int // removed original indices, in removal order
	Iterations int   // passes that actually removed something
}

/*
RemoveLocalOutliers .
	Iterative MAD-based rejection, up to MaxIterations passes:

	1) for each still-kept finite point, collect the window neighbors
	   (half-width HalfWindow, center excluded) that are still kept and
	   finite, taking their ORIGINAL values — statistics never see
	   values removed or modified by earlier iterations, so removing
	   one outlier cannot shift the local statistics enough to falsely
	   flag its true neighbors;
	2) remove the point when |value - median| > mad * MADThreshold;
	   a zero local MAD degenerates the threshold to zero, so any
	   strict deviation from a constant neighborhood is removed;
	3) removals are applied only after the full pass, and a pass that
	   removes nothing stops the loop.

	Series shorter than 2*HalfWindow+1 are returned untouched with 0
	iterations.
*/
func RemoveLocalOutliers(y []float64, op *OutlierOptions) OutlierResult {
	o := op.withDefaults()
	n := len(y)

	res := OutlierResult{}
	if n < 2*o.HalfWindow+1 {
		res.Kept = allIndices(n)
		return res
	}

	kept := make([]bool, n)
	for i := range kept {
		kept[i] = true
	}

	neigh := make([]float64, 0, 2*o.HalfWindow)
	for iter := 0; iter < o.MaxIterations; iter++ {
		var toRemove []int
		for i := 0; i < n; i++ {
			if !kept[i] || !IsFinite(y[i]) {
				continue
			}

			neigh = neigh[:0]
			for j := i - o.HalfWindow; j <= i+o.HalfWindow; j++ {
				if j < 0 || j >= n || j == i {
					continue
				}
				if !kept[j] || !IsFinite(y[j]) {
					continue
				}
				neigh = append(neigh, y[j])
			}
			if len(neigh) == 0 {
				continue
			}

			med := Median(neigh)
			mad := MAD(neigh, med)
			if math.Abs(y[i]-med) > mad*o.MADThreshold {
				toRemove = append(toRemove, i)
			}
		}

		if len(toRemove) == 0 {
			break
		}
		for _, i := range toRemove {
			kept[i] = false
		}
		res.Removed = append(res.Removed, toRemove...)
		res.Iterations++
	}

	res.Kept = make([]int, 0, n-len(res.Removed))
	for i, k := range kept {
		if k {
			res.Kept = append(res.Kept, i)
		}
	}
	return res
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
