package hdc

import "errors"

var (
	// ErrDimensionMismatch is returned when operands have different dimensions.
	ErrDimensionMismatch = errors.New("hdc: dimension mismatch")

	// ErrEmptyBundle is returned when Bundle is called with no vectors.
	ErrEmptyBundle = errors.New("hdc: bundle requires at least one vector")

	// ErrInvalidSparsity is returned when a sampling sparsity lies outside [0, 1].
	ErrInvalidSparsity = errors.New("hdc: sparsity must be in [0, 1]")
)
