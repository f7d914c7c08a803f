package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckFinite scans a score vector and returns a NonFiniteError for the
// first NaN or Inf it finds. row identifies the candidate the vector
// belongs to so the error can point at the offending cell.
func CheckFinite(op string, row int, values []float64) error {
	for col, v := range values {
		if !IsFinite(v) {
			return NewNonFiniteError(op, row, col, v)
		}
	}
	return nil
}

// CheckFiniteMatrix scans all values of a matrix-like for NaN or Inf and
// returns a NonFiniteError pointing at the first offending cell.
func CheckFiniteMatrix(op string, m interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); !IsFinite(v) {
				return NewNonFiniteError(op, i, j, v)
			}
		}
	}
	return nil
}
