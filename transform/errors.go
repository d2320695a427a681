package transform

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cliffgo/blade"
)

var (
	// ErrNilTransform is returned when Apply receives a nil Func.
	ErrNilTransform = errors.New("transform: nil func")

	// ErrDegenerate is returned for an axis without vector part or a plane
	// without bivector part.
	ErrDegenerate = errors.New("transform: degenerate generator")
)

// ErrDimension indicates an operator that reaches beyond e₁, e₂, e₃.
type ErrDimension struct {
	Dimension blade.Index
}

func (e *ErrDimension) Error() string {
	return fmt.Sprintf("transform: operator uses basis index %d, points have 3", e.Dimension)
}
