package hdc

import "fmt"

// Algebra is the composition and denoising policy of a hyperdimensional
// system. Query and cleanup code depend only on this interface so that
// alternative encodings can reuse the same search logic.
type Algebra interface {
	// Dims is the dimension every operand must have.
	Dims() int
	// Bind associates two vectors.
	Bind(a, b Vector) (Vector, error)
	// Bundle superimposes a non-empty set of vectors.
	Bundle(vecs []Vector) (Vector, error)
	// Process maps a raw vector into the space searched by cleanup.
	Process(v Vector) (Vector, error)
}

// Binary is the binary nearest-neighbour algebra: XOR binding, majority
// bundling with ties to 1, and an identity Process step.
// It is safe for concurrent use.
type Binary struct {
	dims   int
	counts *countsPool
}

// NewBinary returns a Binary algebra over vectors of the given dimension.
// Panics if dims is not positive.
func NewBinary(dims int) *Binary {
	if dims <= 0 {
		panic("hdc: dims must be positive")
	}
	return &Binary{dims: dims, counts: newCountsPool(dims)}
}

// Dims returns the operand dimension.
func (b *Binary) Dims() int { return b.dims }

// Bind returns the XOR of a and b.
func (b *Binary) Bind(x, y Vector) (Vector, error) {
	if err := b.check(x, y); err != nil {
		return Vector{}, err
	}
	return Bind(x, y)
}

// Bundle returns the per-bit majority of vecs, tallied in a pooled buffer.
func (b *Binary) Bundle(vecs []Vector) (Vector, error) {
	if len(vecs) == 0 {
		return Vector{}, ErrEmptyBundle
	}
	if err := b.check(vecs...); err != nil {
		return Vector{}, err
	}
	counts := b.counts.get()
	defer b.counts.put(counts)
	return bundleInto(counts, vecs), nil
}

// Process returns v unchanged after checking its dimension.
func (b *Binary) Process(v Vector) (Vector, error) {
	if err := b.check(v); err != nil {
		return Vector{}, err
	}
	return v, nil
}

func (b *Binary) check(vecs ...Vector) error {
	for _, v := range vecs {
		if v.dims != b.dims {
			return fmt.Errorf("%w: want %d, got %d", ErrDimensionMismatch, b.dims, v.dims)
		}
	}
	return nil
}
