package cliffgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cliffgo/blade"
)

var (
	// ErrInvalidArgument is returned when an operation receives arguments
	// it cannot work with.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrEqualBases indicates a rotor plane spanned by a single basis vector.
//
// It unwraps to ErrInvalidArgument.
type ErrEqualBases struct {
	Base blade.Index
}

func (e *ErrEqualBases) Error() string {
	return fmt.Sprintf("cannot create a rotor with equal bases: e%d", e.Base)
}

func (e *ErrEqualBases) Unwrap() error { return ErrInvalidArgument }
