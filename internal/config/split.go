package config

import (
	"errors"
	"fmt"
)

// Split selects which persisted result file is loaded.
type Split string

// Split constants
const (
	Train Split = "train"
	Dev   Split = "dev"
	Test  Split = "test"
)

// ValidSplits contains all valid split values
var ValidSplits = []Split{Train, Dev, Test}

// ErrInvalidSplit is matched by every InvalidSplitError.
var ErrInvalidSplit = errors.New("invalid split selection")

// InvalidSplitError reports a split argument outside ValidSplits.
type InvalidSplitError struct {
	Value string
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("invalid split %q: please write down either %s", e.Value, ValidSplitsString())
}

func (e *InvalidSplitError) Unwrap() error { return ErrInvalidSplit }

// ParseSplit returns the Split named by s.
func ParseSplit(s string) (Split, error) {
	for _, sp := range ValidSplits {
		if s == string(sp) {
			return sp, nil
		}
	}
	return "", &InvalidSplitError{Value: s}
}

// ValidSplitsString returns the valid splits for usage and error messages.
func ValidSplitsString() string {
	return "train, dev, or test"
}

func (s Split) String() string { return string(s) }
