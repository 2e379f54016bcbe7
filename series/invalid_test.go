package series

import (
	"math"
	"testing"
)

func TestHandleInvalidPropagate(t *testing.T) {
	vals := []float64{1, math.NaN(), math.Inf(-1), 4}
	cleaned, removed, invalid := HandleInvalidValues(vals, InvalidPropagate)
	if invalid != 2 || removed != nil {
		t.Fatal("err")
	}
	if len(cleaned) != 4 || !math.IsNaN(cleaned[1]) {
		t.Fatal("err")
	}
}

func TestHandleInvalidRemove(t *testing.T) {
	vals := []float64{1, math.NaN(), 3, math.Inf(1)}
	cleaned, removed, invalid := HandleInvalidValues(vals, InvalidRemove)
	if invalid != 2 {
		t.Fatal("err")
	}
	if len(cleaned) != 2 || cleaned[0] != 1 || cleaned[1] != 3 {
		t.Fatal("err")
	}
	if len(removed) != 2 || removed[0] != 1 || removed[1] != 3 {
		t.Fatal("err")
	}
}

func TestHandleInvalidInterpolate(t *testing.T) {
	cleaned, _, invalid := HandleInvalidValues([]float64{1, math.NaN(), 3}, InvalidInterpolate)
	if invalid != 1 {
		t.Fatal("err")
	}
	if cleaned[0] != 1 || cleaned[1] != 2 || cleaned[2] != 3 {
		t.Fatal("err")
	}

	// a longer gap interpolates linearly across it
	cleaned, _, _ = HandleInvalidValues([]float64{0, math.NaN(), math.NaN(), 3}, InvalidInterpolate)
	if cleaned[1] != 1 || cleaned[2] != 2 {
		t.Fatal("err")
	}
}

func TestHandleInvalidInterpolateEdges(t *testing.T) {
	// one-sided gap copies the finite neighbor
	cleaned, _, _ := HandleInvalidValues([]float64{math.NaN(), 5, 7}, InvalidInterpolate)
	if cleaned[0] != 5 {
		t.Fatal("err")
	}
	cleaned, _, _ = HandleInvalidValues([]float64{5, 7, math.NaN()}, InvalidInterpolate)
	if cleaned[2] != 7 {
		t.Fatal("err")
	}

	// no finite neighbor at all defaults to 0
	var invalid int
	cleaned, _, invalid = HandleInvalidValues([]float64{math.NaN(), math.NaN()}, InvalidInterpolate)
	if invalid != 2 || cleaned[0] != 0 || cleaned[1] != 0 {
		t.Fatal("err")
	}
}
