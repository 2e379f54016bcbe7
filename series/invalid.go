package series

// InvalidMode selects how NaN/Inf samples are resolved.
type InvalidMode string

// invalid-value modes
const (
	InvalidPropagate   InvalidMode = "propagate"
	InvalidRemove      InvalidMode = "remove"
	InvalidInterpolate InvalidMode = "interpolate"
)

// HandleInvalidValues resolves non-finite entries per mode:
//
//	propagate:   values returned as-is, non-finite entries only counted;
//	remove:      each non-finite entry is dropped, its index reported;
//	interpolate: linear interpolation between the nearest finite
//	             neighbors; one finite side copies that value; no finite
//	             neighbor at all defaults to 0.
//
// removed is nil except in remove mode.
func HandleInvalidValues(values []float64, mode InvalidMode) (cleaned []float64, removed []int, invalid int) {
	switch mode {
	case InvalidRemove:
		cleaned = make([]float64, 0, len(values))
		for i, v := range values {
			if !IsFinite(v) {
				removed = append(removed, i)
				invalid++
				continue
			}
			cleaned = append(cleaned, v)
		}
		return cleaned, removed, invalid

	case InvalidInterpolate:
		cleaned = append([]float64(nil), values...)
		for i, v := range values {
			if IsFinite(v) {
				continue
			}
			invalid++

			l := i - 1
			for l >= 0 && !IsFinite(values[l]) {
				l--
			}
			r := i + 1
			for r < len(values) && !IsFinite(values[r]) {
				r++
			}

			switch {
			case l >= 0 && r < len(values):
				frac := float64(i-l) / float64(r-l)
				cleaned[i] = values[l] + (values[r]-values[l])*frac
			case l >= 0:
				cleaned[i] = values[l]
			case r < len(values):
				cleaned[i] = values[r]
			default:
				cleaned[i] = 0
			}
		}
		return cleaned, nil, invalid

	default: // propagate
		for _, v := range values {
			if !IsFinite(v) {
				invalid++
			}
		}
		return values, nil, invalid
	}
}
