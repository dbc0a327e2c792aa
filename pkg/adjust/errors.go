package adjust

import "errors"

var (
	// ErrConfiguration indicates an invalid construction parameter, such as
	// an unknown statistic or mean-field-bias method.
	ErrConfiguration = errors.New("adjust: invalid configuration")
	// ErrShapeMismatch indicates a value vector whose length disagrees with
	// the coordinate set fixed at construction.
	ErrShapeMismatch = errors.New("adjust: value vector length disagrees with its coordinate set")
	// ErrInvalidInput indicates an empty or degenerate coordinate set.
	ErrInvalidInput = errors.New("adjust: empty or degenerate coordinate set")
)
