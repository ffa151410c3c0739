package pentti

import (
	"github.com/Amansingh-afk/pentti/codebook"
	"github.com/Amansingh-afk/pentti/hdc"
)

// Error kinds surfaced by System. Match them with errors.Is.
var (
	ErrUnknownSymbol     = codebook.ErrUnknownSymbol
	ErrDuplicateSymbol   = codebook.ErrDuplicateSymbol
	ErrInvalidConfig     = codebook.ErrInvalidConfig
	ErrDimensionMismatch = hdc.ErrDimensionMismatch
	ErrEmptyBundle       = hdc.ErrEmptyBundle
)
