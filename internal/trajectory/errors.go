package trajectory

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("example index out of range")

	// ErrShapeMismatch reports matrices within one example that disagree on
	// pedestrian count or forecast length.
	ErrShapeMismatch = errors.New("example shape mismatch")
)

// IndexOutOfRangeError reports a requested example that the loaded
// collection does not contain.
type IndexOutOfRangeError struct {
	Split string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s set does not contain example %d (%d examples); choose another example", e.Split, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }
