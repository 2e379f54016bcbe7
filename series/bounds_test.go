package series

import (
	"math"
	"testing"
)

func TestApplyBoundsClamp(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{-5, 0, 10}
	b := &Bounds{Min: Float(0), Max: Float(5), Mode: BoundsClamp}

	out, violations, filtered := ApplyBounds(x, y, b)
	if violations != 2 || filtered != nil {
		t.Fatal("err")
	}
	if out[0] != 0 || out[1] != 0 || out[2] != 5 {
		t.Fatal("err")
	}

	// the input is never modified
	if y[0] != -5 || y[2] != 10 {
		t.Fatal("err")
	}
}

func TestApplyBoundsClampIdempotent(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{-5, 0, 10, 2.5}
	b := &Bounds{Min: Float(0), Max: Float(5)}

	once, v1, _ := ApplyBounds(x, y, b)
	twice, v2, _ := ApplyBounds(x, once, b)
	if v1 != 2 || v2 != 0 {
		t.Fatal("err")
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatal("err")
		}
	}
}

func TestApplyBoundsFilter(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{-5, 1, 10}
	b := &Bounds{Min: Float(0), Max: Float(5), Mode: BoundsFilter}

	out, violations, filtered := ApplyBounds(x, y, b)
	if violations != 2 {
		t.Fatal("err")
	}
	if len(filtered) != 2 || filtered[0] != 0 || filtered[1] != 2 {
		t.Fatal("err")
	}
	// filter leaves the values for the caller to drop
	if out[0] != -5 || out[2] != 10 {
		t.Fatal("err")
	}
}

func TestApplyBoundsNull(t *testing.T) {
	out, violations, _ := ApplyBounds([]float64{0}, []float64{99}, &Bounds{Max: Float(5), Mode: BoundsNull})
	if violations != 1 || !math.IsNaN(out[0]) {
		t.Fatal("err")
	}
}

func TestApplyBoundsDynamic(t *testing.T) {
	// x-dependent upper bound: max = 2*x
	b := &Bounds{MaxFunc: func(x float64) float64 { return 2 * x }}
	x := []float64{1, 2, 3}
	y := []float64{5, 3, 5}

	out, violations, _ := ApplyBounds(x, y, b)
	if violations != 1 {
		t.Fatal("err")
	}
	if out[0] != 2 || out[1] != 3 || out[2] != 5 {
		t.Fatal("err")
	}
}

func TestApplyBoundsSkipsNonFinite(t *testing.T) {
	out, violations, _ := ApplyBounds([]float64{0, 1}, []float64{math.NaN(), 9}, &Bounds{Max: Float(5)})
	if violations != 1 {
		t.Fatal("err")
	}
	if !math.IsNaN(out[0]) || out[1] != 5 {
		t.Fatal("err")
	}
}
