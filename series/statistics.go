package series

import (
	"math"
	"sort"
)

// IsFinite .
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Median sort-based median; the input slice is copied and left
// unchanged; 0 for an empty slice
func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// MAD median absolute deviation around med
func MAD(vals []float64, med float64) float64 {
	if len(vals) == 0 {
		return 0
	}

	devs := make([]float64, 0, len(vals))
	for _, v := range vals {
		devs = append(devs, math.Abs(v-med))
	}
	return Median(devs)
}

// Derivatives forward first differences; length n-1; empty for n < 2
func Derivatives(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}

	d := make([]float64, len(values)-1)
	for i := 0; i < len(values)-1; i++ {
		d[i] = values[i+1] - values[i]
	}
	return d
}

/*
LocalVariance .
	For each index, the sample variance over a centered window of
	half-width windowSize/2, clipped at the sequence boundaries.

	Welford's single-pass update keeps each window numerically stable
	without materializing window copies; non-finite samples are
	ignored; windows with <= 1 finite sample report 0.

	O(n*window) time, O(n) space.
*/
func LocalVariance(values []float64, windowSize int) []float64 {
	out := make([]float64, len(values))
	if windowSize < 2 {
		windowSize = 2
	}
	half := windowSize / 2

	for i := range values {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(values)-1 {
			hi = len(values) - 1
		}

		var n, mean, m2 float64
		for j := lo; j <= hi; j++ {
			v := values[j]
			if !IsFinite(v) {
				continue
			}
			n++
			delta := v - mean
			mean += delta / n
			m2 += delta * (v - mean)
		}

		if n > 1 {
			out[i] = m2 / (n - 1)
		}
	}

	return out
}
