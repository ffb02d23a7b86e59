package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Deinterleave splits m into per-pedestrian series: row 2i becomes xs[i]
// and row 2i+1 becomes ys[i]. A trailing odd row is ignored.
func Deinterleave(m mat.Matrix) (xs, ys [][]float64) {
	r, _ := m.Dims()
	p := r / 2
	xs = make([][]float64, p)
	ys = make([][]float64, p)
	for i := 0; i < p; i++ {
		xs[i] = mat.Row(nil, 2*i, m)
		ys[i] = mat.Row(nil, 2*i+1, m)
	}
	return xs, ys
}

// Interleave is the inverse of Deinterleave.
func Interleave(xs, ys [][]float64) (*mat.Dense, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x-series, %d y-series", ErrShapeMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no pedestrians", ErrShapeMismatch)
	}
	t := len(xs[0])
	if t == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrShapeMismatch)
	}
	m := mat.NewDense(2*len(xs), t, nil)
	for i := range xs {
		if len(xs[i]) != t || len(ys[i]) != t {
			return nil, fmt.Errorf("%w: pedestrian %d has %d/%d steps, want %d", ErrShapeMismatch, i, len(xs[i]), len(ys[i]), t)
		}
		m.SetRow(2*i, xs[i])
		m.SetRow(2*i+1, ys[i])
	}
	return m, nil
}

// Scale returns s*v elementwise. v is not modified.
func Scale(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = s * x
	}
	return out
}

// ScaleAll applies Scale to every series.
func ScaleAll(series [][]float64, s float64) [][]float64 {
	out := make([][]float64, len(series))
	for i, v := range series {
		out[i] = Scale(v, s)
	}
	return out
}
