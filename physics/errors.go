package physics

import "errors"

var (
	ErrNonFiniteBox = errors.New("box has non-finite coordinates")
	ErrInvertedBox  = errors.New("box min exceeds max")
	ErrOverlap      = errors.New("box overlaps an obstacle")
)
