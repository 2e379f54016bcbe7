package series

import "math"

// BoundsMode selects what happens to a value outside the bounds.
type BoundsMode string

// bounds violation modes
const (
	BoundsClamp  BoundsMode = "clamp"
	BoundsFilter BoundsMode = "filter"
	BoundsNull   BoundsMode = "null"
)

// Bounds describe physical limits for a series. Each side is either a
// constant or a function of the corresponding x value; the function
// wins when both are set. A nil side is unbounded.
type Bounds struct {
	Min *float64 `yaml:"Min"`
	Max *float64 `yaml:"Max"`

	MinFunc func(x float64) float64 `yaml:"-"`
	MaxFunc func(x float64) float64 `yaml:"-"`

	Mode BoundsMode `yaml:"Mode"` // default clamp
}

func (b *Bounds) minAt(x float64) (float64, bool) {
	if b.MinFunc != nil {
		return b.MinFunc(x), true
	}
	if b.Min != nil {
		return *b.Min, true
	}
	return 0, false
}

func (b *Bounds) maxAt(x float64) (float64, bool) {
	if b.MaxFunc != nil {
		return b.MaxFunc(x), true
	}
	if b.Max != nil {
		return *b.Max, true
	}
	return 0, false
}

// Float .
func Float(v float64) *float64 {
	return &v
}

// ApplyBounds checks every finite sample against the bounds at its x
// value. On violation: clamp clips to the nearest bound, filter
// reports the index for the caller to drop, null sets the value to NaN
// leaving removal to a later stage. Non-finite samples are not checked
// (the invalid-value stage owns those). The input y is not modified.
func ApplyBounds(x, y []float64, b *Bounds) (out []float64, violations int, filtered []int) {
	out = append([]float64(nil), y...)
	if b == nil {
		return out, 0, nil
	}

	for i, v := range y {
		if !IsFinite(v) {
			continue
		}

		xi := 0.0
		if i < len(x) {
			xi = x[i]
		}

		lo, hasLo := b.minAt(xi)
		hi, hasHi := b.maxAt(xi)

		bound := 0.0
		violated := false
		if hasLo && v < lo {
			bound = lo
			violated = true
		} else if hasHi && v > hi {
			bound = hi
			violated = true
		}
		if !violated {
			continue
		}
		violations++

		switch b.Mode {
		case BoundsFilter:
			filtered = append(filtered, i)
		case BoundsNull:
			out[i] = math.NaN()
		default: // clamp
			out[i] = bound
		}
	}

	return out, violations, filtered
}
