package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Example is one prediction instance. Each matrix has shape (2P, T).
type Example struct {
	Input      *mat.Dense
	Target     *mat.Dense
	Prediction *mat.Dense
}

// Pedestrians returns P, half the input row count.
func (e Example) Pedestrians() int {
	r, _ := e.Input.Dims()
	return r / 2
}

// Validate checks the shape invariants: an even row count shared by all
// three matrices, and a common time axis for target and prediction.
func (e Example) Validate() error {
	if e.Input == nil || e.Target == nil || e.Prediction == nil {
		return fmt.Errorf("%w: missing matrix", ErrShapeMismatch)
	}
	inRows, _ := e.Input.Dims()
	tRows, tCols := e.Target.Dims()
	pRows, pCols := e.Prediction.Dims()

	if inRows%2 != 0 {
		return fmt.Errorf("%w: input has %d rows, want an even count", ErrShapeMismatch, inRows)
	}
	if tRows != inRows || pRows != inRows {
		return fmt.Errorf("%w: rows input=%d target=%d prediction=%d", ErrShapeMismatch, inRows, tRows, pRows)
	}
	if tCols != pCols {
		return fmt.Errorf("%w: target has %d time steps, prediction has %d", ErrShapeMismatch, tCols, pCols)
	}
	return nil
}

// Collection is the ordered set of examples from one result file.
type Collection struct {
	examples []Example
}

// NewCollection wraps examples in order.
func NewCollection(examples ...Example) *Collection {
	return &Collection{examples: examples}
}

// Len returns the number of examples.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.examples)
}

// At returns example i, or an IndexOutOfRangeError naming split when i is
// outside [0, Len()).
func (c *Collection) At(split string, i int) (Example, error) {
	if i < 0 || i >= c.Len() {
		return Example{}, &IndexOutOfRangeError{Split: split, Index: i, Len: c.Len()}
	}
	return c.examples[i], nil
}
