package testtools

import (
	"math"
	"math/rand"
)

// Gener generates one value for a position on the x axis.
type Gener interface {
	Gen(x float64) float64
}

// LineGener y = Ax + B
type LineGener struct {
	A float64
	B float64
}

// Gen .
func (lg *LineGener) Gen(x float64) float64 {
	return lg.A*x + lg.B
}

// SinGener y = Amp * sin(Freq*x)
type SinGener struct {
	Amp  float64
	Freq float64
}

// Gen .
func (sg *SinGener) Gen(x float64) float64 {
	return sg.Amp * math.Sin(sg.Freq*x)
}

// ChirpGener a sinusoid whose frequency grows linearly with x
type ChirpGener struct {
	Amp  float64
	Freq float64
	Rate float64 // frequency growth per unit x
}

// Gen .
func (cg *ChirpGener) Gen(x float64) float64 {
	return cg.Amp * math.Sin((cg.Freq+cg.Rate*x)*x)
}

// UniRandGener uniform distribution random generator
type UniRandGener struct {
	Min float64
	Max float64
}

// Gen .
func (urg *UniRandGener) Gen(x float64) float64 {
	return urg.Min + rand.Float64()*(urg.Max-urg.Min)
}

// PolyGener y = Coeffs[0] + Coeffs[1]*x + Coeffs[2]*x^2 + ...
type PolyGener struct {
	Coeffs []float64
}

// Gen .
func (pg *PolyGener) Gen(x float64) float64 {
	y := 0.0
	p := 1.0
	for _, c := range pg.Coeffs {
		y += c * p
		p *= x
	}
	return y
}

// GenX the index axis 0..n-1
func GenX(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

// GenValues .
func GenValues(n int, g Gener) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = g.Gen(float64(i))
	}
	return vals
}

// AddValues pointwise sum; the shorter input bounds the result
func AddValues(a, b []float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] + b[i]
	}
	return out
}

// WithSpikes a copy of vals with the given indices set to spike
func WithSpikes(vals []float64, spike float64, indices ...int) []float64 {
	out := append([]float64(nil), vals...)
	for _, i := range indices {
		out[i] = spike
	}
	return out
}
