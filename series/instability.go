package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// instability detection defaults
const (
	DefaultInstabilityWindow  = 20
	DefaultDerivVarThreshold  = 3.0
	DefaultAmplitudeThreshold = 10.0
	DefaultMaxSignChanges     = 3
	DefaultScoreThreshold     = 1.0
)

// Weights weight each detection method in the combined score.
type Weights struct {
	DerivVariance float64 `yaml:"DerivVariance"`
	Amplitude     float64 `yaml:"Amplitude"`
	SignChange    float64 `yaml:"SignChange"`
}

// DefaultWeights .
func DefaultWeights() Weights {
	return Weights{DerivVariance: 1, Amplitude: 1, SignChange: 1}
}

// InstabilityOptions .
type InstabilityOptions struct {
	WindowSize     int     `yaml:"WindowSize"`     // default 20
	Threshold      float64 `yaml:"Threshold"`      // combined score threshold, default 1.0
	Weights        Weights `yaml:"Weights"`        // default 1/1/1
	DerivThreshold float64 `yaml:"DerivThreshold"` // variance ratio multiplier, default 3.0
	MaxSignChanges int     `yaml:"MaxSignChanges"` // changes per window, default 3
}

func (op *InstabilityOptions) withDefaults() InstabilityOptions {
	if op == nil {
		return InstabilityOptions{
			WindowSize:     DefaultInstabilityWindow,
			Threshold:      DefaultScoreThreshold,
			Weights:        DefaultWeights(),
			DerivThreshold: DefaultDerivVarThreshold,
			MaxSignChanges: DefaultMaxSignChanges,
		}
	}

	// explicit zero weights are honored: a zero weight sum reports a
	// combined score of 0
	o := *op
	if o.WindowSize < 2 {
		o.WindowSize = DefaultInstabilityWindow
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultScoreThreshold
	}
	if o.DerivThreshold <= 0 {
		o.DerivThreshold = DefaultDerivVarThreshold
	}
	if o.MaxSignChanges <= 0 {
		o.MaxSignChanges = DefaultMaxSignChanges
	}
	return o
}

// MethodScore result of one detection method; Onset is -1 when the
// method did not fire.
type MethodScore struct {
	Onset int
	Score float64
}

// InstabilityResult .
type InstabilityResult struct {
	Detected   bool
	OnsetIndex int // index into the input y, -1 when no method fired
	OnsetX     float64
	Score      float64 // weighted combined score

	DerivVariance MethodScore
	Amplitude     MethodScore
	SignChange    MethodScore
}

/*
DetectInstability .
	Three independent heuristics over the finite samples of y:

	1) derivative-variance spike: the local variance of the first
	   differences, compared against the median of the early positive
	   variances;
	2) amplitude growth: max absolute deviation from the local mean
	   per window, compared against the median of the first quarter;
	3) sign-change frequency: derivative sign changes per sliding
	   window.

	Scores are combined as a weighted average, the onset is the
	earliest index any method fired at, mapped back through the
	finite-sample filter. Detected when the combined score reaches
	Threshold or any method fired. Fewer than WindowSize*2 finite
	samples always reports not-detected.
*/
func DetectInstability(x, y []float64, op *InstabilityOptions) InstabilityResult {
	o := op.withDefaults()

	res := InstabilityResult{
		OnsetIndex:    -1,
		DerivVariance: MethodScore{Onset: -1},
		Amplitude:     MethodScore{Onset: -1},
		SignChange:    MethodScore{Onset: -1},
	}

	// detection runs on the finite samples only; idx maps a filtered
	// position back to the caller's indexing
	idx := make([]int, 0, len(y))
	yf := make([]float64, 0, len(y))
	for i, v := range y {
		if IsFinite(v) {
			idx = append(idx, i)
			yf = append(yf, v)
		}
	}
	if len(yf) < o.WindowSize*2 {
		return res
	}

	res.DerivVariance = detectDerivVariance(yf, &o)
	res.Amplitude = detectAmplitudeGrowth(yf, &o)
	res.SignChange = detectSignChanges(yf, &o)

	w := o.Weights
	wsum := w.DerivVariance + w.Amplitude + w.SignChange
	if wsum > 0 {
		res.Score = (w.DerivVariance*res.DerivVariance.Score +
			w.Amplitude*res.Amplitude.Score +
			w.SignChange*res.SignChange.Score) / wsum
	}

	onset := -1
	for _, m := range []MethodScore{res.DerivVariance, res.Amplitude, res.SignChange} {
		if m.Onset >= 0 && (onset < 0 || m.Onset < onset) {
			onset = m.Onset
		}
	}
	if onset >= 0 {
		if onset >= len(idx) {
			onset = len(idx) - 1
		}
		res.OnsetIndex = idx[onset]
		if res.OnsetIndex < len(x) {
			res.OnsetX = x[res.OnsetIndex]
		}
	}

	res.Detected = res.Score >= o.Threshold || onset >= 0
	return res
}

// detectDerivVariance flags the first local derivative variance that
// jumps past DerivThreshold times the baseline median. The baseline is
// the median of the first max(min(len/4, 50), WindowSize) POSITIVE
// variances; a zero baseline median never detects, even against a real
// later spike over near-zero noise.
func detectDerivVariance(y []float64, o *InstabilityOptions) MethodScore {
	m := MethodScore{Onset: -1}

	d := Derivatives(y)
	if len(d) < 2 {
		return m
	}
	vars := LocalVariance(d, o.WindowSize)

	baseN := len(vars) / 4
	if baseN > 50 {
		baseN = 50
	}
	if baseN < o.WindowSize {
		baseN = o.WindowSize
	}
	if baseN > len(vars) {
		baseN = len(vars)
	}

	pos := make([]float64, 0, baseN)
	for _, v := range vars[:baseN] {
		if v > 0 {
			pos = append(pos, v)
		}
	}
	if len(pos) == 0 {
		return m
	}
	base := Median(pos)
	if base == 0 {
		return m
	}

	for i := baseN; i < len(vars); i++ {
		ratio := vars[i] / base
		if ratio > m.Score {
			m.Score = ratio
		}
		if m.Onset < 0 && ratio > o.DerivThreshold {
			m.Onset = i + 1 // derivative index -> value index
		}
	}
	return m
}

// detectAmplitudeGrowth compares each window's max absolute deviation
// from its local mean against the median amplitude of the first
// quarter; a ratio past 10 fires. Needs len >= WindowSize*3 and at
// least 10 amplitude samples.
func detectAmplitudeGrowth(y []float64, o *InstabilityOptions) MethodScore {
	m := MethodScore{Onset: -1}
	if len(y) < o.WindowSize*3 {
		return m
	}
	half := o.WindowSize / 2

	amps := make([]float64, 0, len(y)-2*half)
	for i := half; i < len(y)-half; i++ {
		window := y[i-half : i+half+1]
		mean := stat.Mean(window, nil)

		amp := 0.0
		for _, v := range window {
			if dev := math.Abs(v - mean); dev > amp {
				amp = dev
			}
		}
		amps = append(amps, amp)
	}
	if len(amps) < 10 {
		return m
	}

	q := len(amps) / 4
	if q < 1 {
		q = 1
	}
	base := Median(amps[:q])
	if base == 0 {
		return m
	}

	for i, a := range amps {
		ratio := a / base
		if ratio/DefaultAmplitudeThreshold > m.Score {
			m.Score = ratio / DefaultAmplitudeThreshold
		}
		if m.Onset < 0 && ratio > DefaultAmplitudeThreshold {
			m.Onset = i + half
		}
	}
	return m
}

// detectSignChanges counts derivative sign changes inside a sliding
// window of half-width WindowSize/2 and fires once a window holds more
// than MaxSignChanges of them. The score is the peak count normalized
// by MaxSignChanges.
func detectSignChanges(y []float64, o *InstabilityOptions) MethodScore {
	m := MethodScore{Onset: -1}

	d := Derivatives(y)
	if len(d) < 2 {
		return m
	}
	half := o.WindowSize / 2

	// change[i] marks a sign flip between d[i-1] and d[i]
	change := make([]bool, len(d))
	for i := 1; i < len(d); i++ {
		if d[i-1]*d[i] < 0 {
			change[i] = true
		}
	}

	for i := range d {
		lo := i - half
		if lo < 1 {
			lo = 1
		}
		hi := i + half
		if hi > len(d)-1 {
			hi = len(d) - 1
		}

		count := 0
		for j := lo; j <= hi; j++ {
			if change[j] {
				count++
			}
		}

		score := float64(count) / float64(o.MaxSignChanges)
		if score > m.Score {
			m.Score = score
		}
		if m.Onset < 0 && count > o.MaxSignChanges {
			m.Onset = i + 1 // derivative index -> value index
		}
	}
	return m
}
