package series

import "math"

// Dense matrix helpers for the Savitzky-Golay coefficient solve. The
// matrices here are always (order+1)x(order+1) and tiny, so no
// linear-algebra dependency is pulled in.

// Transpose .
func Transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}

	rows, cols := len(m), len(m[0])
	t := make([][]float64, cols)
	for i := range t {
		t[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// MulMatrices .
func MulMatrices(a, b [][]float64) [][]float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for k := 0; k < inner; k++ {
			v := a[i][k]
			for j := 0; j < cols; j++ {
				out[i][j] += v * b[k][j]
			}
		}
	}
	return out
}

// InvertMatrix Gauss-Jordan elimination with partial pivoting;
// returns nil when m is singular or near-singular so the caller can
// fall back to a safe default.
func InvertMatrix(m [][]float64) [][]float64 {
	n := len(m)
	if n == 0 {
		return nil
	}

	// augmented [m | I]
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], m[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		// pick the largest pivot in this column
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(aug[pivot][col]) < 1e-12 {
			return nil
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pv
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := aug[r][col]
			if f == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= f * aug[col][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = aug[i][n:]
	}
	return inv
}
