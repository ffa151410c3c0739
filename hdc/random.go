package hdc

import (
	"fmt"
	"math/rand"
)

// Sample draws a fresh Vector whose components are independently 1 with
// probability 1-sparsity. Sparsity is the expected fraction of zero bits:
// 0 gives (almost surely) all ones, 1 gives all zeros.
func Sample(dims int, sparsity float64, r *rand.Rand) (Vector, error) {
	if sparsity < 0 || sparsity > 1 || sparsity != sparsity {
		return Vector{}, fmt.Errorf("%w: got %v", ErrInvalidSparsity, sparsity)
	}
	v := New(dims)
	for i := 0; i < dims; i++ {
		if r.Float64() >= sparsity {
			v.data[i/64] |= 1 << uint(i%64)
		}
	}
	return v, nil
}

// Random generates a deterministic pseudorandom Vector for the given seed
// with sparsity 0.5. The same (dims, seed) pair always produces the same vector.
func Random(dims int, seed int64) Vector {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec
	v := New(dims)
	for i := range v.data {
		v.data[i] = r.Uint64()
	}
	zeroPadding(v.data, dims)
	return v
}
