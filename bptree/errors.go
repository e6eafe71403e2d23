package bptree

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a tree is constructed with
// settings it cannot operate with.
var ErrInvalidConfiguration = errors.New("bptree: invalid configuration")

// InvalidBranchingFactorError reports a branching factor that is too small.
//
// It matches ErrInvalidConfiguration via errors.Is.
type InvalidBranchingFactorError struct {
	BranchingFactor int
}

func (e *InvalidBranchingFactorError) Error() string {
	return fmt.Sprintf("bptree: illegal branching factor %d (must be > %d)", e.BranchingFactor, MinBranchingFactor)
}

func (e *InvalidBranchingFactorError) Unwrap() error { return ErrInvalidConfiguration }
