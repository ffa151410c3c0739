package codebook

import "errors"

var (
	// ErrUnknownSymbol is returned when a symbol is not part of the vocabulary.
	ErrUnknownSymbol = errors.New("codebook: unknown symbol")

	// ErrDuplicateSymbol is returned when a configuration names the same
	// symbol twice, as a property, a value, or both.
	ErrDuplicateSymbol = errors.New("codebook: duplicate symbol")

	// ErrInvalidConfig is returned for an empty vocabulary, a non-positive
	// dimension, a sparsity outside [0, 1], or an empty symbol name.
	ErrInvalidConfig = errors.New("codebook: invalid config")
)
