// Package cleanup implements the associative memory that projects an
// arbitrary, possibly noisy, hypervector onto the nearest codebook vector.
package cleanup

import (
	"github.com/Amansingh-afk/pentti/codebook"
	"github.com/Amansingh-afk/pentti/hdc"
)

// Match is the result of a nearest-neighbour search.
type Match struct {
	Index    int        // enumeration position in the codebook
	Symbol   string     // symbol at Index
	Distance int        // Hamming distance from the processed input
	Vector   hdc.Vector // codebook vector at Index
}

// Memory searches a Codebook under Hamming distance.
// It holds no mutable state and is safe for concurrent use.
type Memory struct {
	cb  *codebook.Codebook
	alg hdc.Algebra
}

// New returns a Memory over cb. alg supplies the Process step applied to
// every input before the search. Panics if the dimensions disagree.
func New(cb *codebook.Codebook, alg hdc.Algebra) *Memory {
	if cb.Dims() != alg.Dims() {
		panic("cleanup: codebook and algebra dimensions differ")
	}
	return &Memory{cb: cb, alg: alg}
}

// CleanUp returns the codebook vector nearest to v.
func (m *Memory) CleanUp(v hdc.Vector) (hdc.Vector, error) {
	match, err := m.Nearest(v)
	if err != nil {
		return hdc.Vector{}, err
	}
	return match.Vector, nil
}

// Nearest scans the codebook in enumeration order and keeps a candidate
// only when it is strictly closer than the current best, so ties go to the
// earliest symbol.
func (m *Memory) Nearest(v hdc.Vector) (Match, error) {
	p, err := m.alg.Process(v)
	if err != nil {
		return Match{}, err
	}
	best, bestDist := -1, 0
	for i := 0; i < m.cb.Len(); i++ {
		d, err := hdc.Distance(m.cb.Vector(i), p)
		if err != nil {
			return Match{}, err
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return Match{
		Index:    best,
		Symbol:   m.cb.Symbol(best),
		Distance: bestDist,
		Vector:   m.cb.Vector(best),
	}, nil
}
