package series

// SmoothType .
type SmoothType string

// smoothing algorithms
const (
	SmoothMovingAvg SmoothType = "moving_avg"
	SmoothSavGol    SmoothType = "savgol"
	SmoothGaussian  SmoothType = "gaussian"
)

// SmearFunc is the external Gaussian smearing collaborator: it takes
// the x and y arrays plus a sigma and returns the smoothed y.
type SmearFunc func(x, y []float64, sigma float64) []float64

// SmoothOptions .
type SmoothOptions struct {
	Type   SmoothType `yaml:"Type"`
	Window int        `yaml:"Window"` // moving_avg / savgol window
	Order  int        `yaml:"Order"`  // savgol polynomial order
	Sigma  float64    `yaml:"Sigma"`  // gaussian sigma

	Smear SmearFunc `yaml:"-"`
}

// Smooth dispatches on op.Type. A gaussian request without an injected
// SmearFunc falls back to the moving average.
func Smooth(x, y []float64, op *SmoothOptions) []float64 {
	if op == nil {
		return append([]float64(nil), y...)
	}

	window := op.Window
	if window < 1 {
		window = 5
	}

	switch op.Type {
	case SmoothSavGol:
		return SavitzkyGolay(y, window, op.Order)
	case SmoothGaussian:
		if op.Smear != nil {
			return op.Smear(x, y, op.Sigma)
		}
		return MovingAverage(y, window)
	default:
		return MovingAverage(y, window)
	}
}

// MovingAverage symmetric window average, truncated at the
// boundaries; non-finite samples are skipped, and a window with no
// finite sample falls back to the original value.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	half := window / 2

	for i := range values {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(values)-1 {
			hi = len(values) - 1
		}

		var sum float64
		var n int
		for j := lo; j <= hi; j++ {
			if !IsFinite(values[j]) {
				continue
			}
			sum += values[j]
			n++
		}

		if n == 0 {
			out[i] = values[i]
			continue
		}
		out[i] = sum / float64(n)
	}

	return out
}

/*
SavitzkyGolay .
	Least-squares polynomial smoothing: fit a degree-order polynomial
	over an odd window, evaluate at the window center. Exact for
	polynomials of degree <= order, unlike a plain moving average.

	The window is adjusted defensively: raised to order+2, made odd,
	capped at the data length. Coefficients come from the first row of
	(VtV)^-1 Vt over the Vandermonde matrix V of window offsets; a
	near-singular VtV falls back to uniform weights. Per output point
	the applied coefficients are renormalized by their sum, which
	accounts for boundary truncation and skipped non-finite neighbors.
*/
func SavitzkyGolay(values []float64, window, order int) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	if order < 1 {
		order = 2
	}

	if window < order+2 {
		window = order + 2
	}
	if window%2 == 0 {
		window++
	}
	if window > n {
		window = n
		if window%2 == 0 {
			window--
		}
	}
	if window < 3 {
		return append([]float64(nil), values...)
	}
	half := window / 2

	coeffs := savgolCoeffs(window, order)
	if coeffs == nil {
		// degenerate fit, keep smoothing with uniform weights
		coeffs = make([]float64, window)
		for i := range coeffs {
			coeffs[i] = 1 / float64(window)
		}
	}

	out := make([]float64, n)
	for i := range values {
		var acc, wsum float64
		used := 0
		for k := -half; k <= half; k++ {
			j := i + k
			if j < 0 || j >= n || !IsFinite(values[j]) {
				continue
			}
			c := coeffs[k+half]
			acc += c * values[j]
			wsum += c
			used++
		}

		if used == 0 || wsum == 0 {
			out[i] = values[i]
			continue
		}
		out[i] = acc / wsum
	}

	return out
}

// savgolCoeffs smoothing coefficients: the constant-term row of
// (VtV)^-1 Vt; nil when the normal matrix is near-singular.
func savgolCoeffs(window, order int) []float64 {
	half := window / 2

	v := make([][]float64, window)
	for r := 0; r < window; r++ {
		row := make([]float64, order+1)
		x := float64(r - half)
		p := 1.0
		for c := 0; c <= order; c++ {
			row[c] = p
			p *= x
		}
		v[r] = row
	}

	vt := Transpose(v)
	inv := InvertMatrix(MulMatrices(vt, v))
	if inv == nil {
		return nil
	}

	proj := MulMatrices(inv, vt) // (order+1) x window
	return proj[0]
}
