// Package hdc implements binary hypervectors and the algebra over them.
// Vectors are bitpacked []uint64 slices; binding and distance are bitwise,
// bundling is a per-bit majority vote.
package hdc

import (
	"fmt"
	"math/bits"
	"strings"
)

// Vector is an immutable bitpacked hypervector.
// Padding bits in the final word are always zero.
type Vector struct {
	dims int
	data []uint64
}

// New returns a zero-valued Vector of the given dimension.
func New(dims int) Vector {
	if dims <= 0 {
		panic("hdc: dims must be positive")
	}
	return Vector{dims: dims, data: make([]uint64, numWords(dims))}
}

// FromWords constructs a Vector from a raw word slice.
// len(data) must equal ceil(dims/64). Padding bits are zeroed automatically.
func FromWords(dims int, data []uint64) Vector {
	if dims <= 0 {
		panic("hdc: dims must be positive")
	}
	needed := numWords(dims)
	if len(data) != needed {
		panic("hdc: data length does not match dims")
	}
	copied := make([]uint64, needed)
	copy(copied, data)
	zeroPadding(copied, dims)
	return Vector{dims: dims, data: copied}
}

// FromBits constructs a Vector from one element per component.
// Any non-zero element is treated as a 1 bit.
func FromBits(b []uint8) Vector {
	v := New(len(b))
	for i, x := range b {
		if x != 0 {
			v.data[i/64] |= 1 << uint(i%64)
		}
	}
	return v
}

// Dims returns the number of components.
func (v Vector) Dims() int { return v.dims }

// Bit reports component i as 0 or 1.
func (v Vector) Bit(i int) uint8 {
	if i < 0 || i >= v.dims {
		panic("hdc: bit index out of range")
	}
	return uint8(v.data[i/64] >> uint(i%64) & 1)
}

// Bits returns the components as a fresh slice of 0/1 values.
func (v Vector) Bits() []uint8 {
	out := make([]uint8, v.dims)
	for i := range out {
		out[i] = uint8(v.data[i/64] >> uint(i%64) & 1)
	}
	return out
}

// Words returns a copy of the packed representation.
func (v Vector) Words() []uint64 {
	out := make([]uint64, len(v.data))
	copy(out, v.data)
	return out
}

// OnesCount returns the number of 1 components.
func (v Vector) OnesCount() int {
	n := 0
	for _, w := range v.data {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsZero reports whether every component is 0.
// The zero Vector{} is also reported as zero.
func (v Vector) IsZero() bool {
	for _, w := range v.data {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports elementwise equality. Vectors of different dimension are
// never equal.
func (v Vector) Equal(o Vector) bool {
	if v.dims != o.dims {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	data := make([]uint64, len(v.data))
	copy(data, v.data)
	return Vector{dims: v.dims, data: data}
}

// String renders the vector as a bit string, component 0 first.
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(v.dims)
	for i := 0; i < v.dims; i++ {
		b.WriteByte('0' + v.Bit(i))
	}
	return b.String()
}

// Bind associates two vectors via XOR. The operation is its own inverse:
// Bind(Bind(a, b), b) == a.
func Bind(a, b Vector) (Vector, error) {
	if err := requireSameDims(a, b); err != nil {
		return Vector{}, err
	}
	result := New(a.dims)
	for i := range result.data {
		result.data[i] = a.data[i] ^ b.data[i]
	}
	return result, nil
}

// Bundle returns the majority-vote superposition of the given vectors.
// A bit is set when at least half of the inputs set it, so with an even
// count ties resolve to 1.
func Bundle(vecs ...Vector) (Vector, error) {
	if len(vecs) == 0 {
		return Vector{}, ErrEmptyBundle
	}
	if err := requireSameDims(vecs...); err != nil {
		return Vector{}, err
	}
	return bundleInto(make([]int32, vecs[0].dims), vecs), nil
}

// bundleInto tallies vecs into counts, which must be zeroed and of length
// dims, and thresholds the result.
func bundleInto(counts []int32, vecs []Vector) Vector {
	dims := vecs[0].dims
	for _, v := range vecs {
		for w, word := range v.data {
			base := w * 64
			limit := 64
			if base+limit > dims {
				limit = dims - base
			}
			for b := 0; b < limit; b++ {
				counts[base+b] += int32(word >> uint(b) & 1)
			}
		}
	}

	n := len(vecs)
	result := New(dims)
	for i, c := range counts {
		if 2*int(c) >= n {
			result.data[i/64] |= 1 << uint(i%64)
		}
	}
	return result
}

// Distance returns the Hamming distance, the number of differing components.
func Distance(a, b Vector) (int, error) {
	if err := requireSameDims(a, b); err != nil {
		return 0, err
	}
	return hamming(a, b), nil
}

// Similarity returns the normalized Hamming similarity in [0.0, 1.0].
// 1.0 = identical, 0.0 = opposite, ~0.5 = unrelated random vectors.
func Similarity(a, b Vector) (float64, error) {
	d, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	return 1.0 - float64(d)/float64(a.dims), nil
}

func hamming(a, b Vector) int {
	var diff int
	for i := range a.data {
		diff += bits.OnesCount64(a.data[i] ^ b.data[i])
	}
	return diff
}

func numWords(dims int) int {
	return (dims + 63) / 64
}

func zeroPadding(data []uint64, dims int) {
	if rem := dims % 64; rem != 0 {
		data[len(data)-1] &= (uint64(1) << uint(rem)) - 1
	}
}

func requireSameDims(vecs ...Vector) error {
	d := vecs[0].dims
	if d == 0 {
		return fmt.Errorf("%w: uninitialized vector", ErrDimensionMismatch)
	}
	for _, v := range vecs[1:] {
		if v.dims != d {
			return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, d, v.dims)
		}
	}
	return nil
}
