// Package query answers "which value does composite W hold for property P"
// by unbinding P from W and cleaning the result up against the codebook.
package query

import (
	"github.com/Amansingh-afk/pentti/cleanup"
	"github.com/Amansingh-afk/pentti/codebook"
	"github.com/Amansingh-afk/pentti/hdc"
)

// Engine composes an Algebra and a cleanup Memory over one Codebook.
// It is safe for concurrent use.
type Engine struct {
	cb  *codebook.Codebook
	mem *cleanup.Memory
	alg hdc.Algebra
}

// New returns an Engine. mem must search cb.
func New(cb *codebook.Codebook, mem *cleanup.Memory, alg hdc.Algebra) *Engine {
	return &Engine{cb: cb, mem: mem, alg: alg}
}

// Query returns the symbol recovered for property from w.
// The boolean is false when the cleaned-up vector is not a codebook vector.
func (e *Engine) Query(property string, w hdc.Vector) (string, bool, error) {
	p, err := e.cb.Encode(property)
	if err != nil {
		return "", false, err
	}
	return e.QueryVector(p, w)
}

// QueryVector is Query with an already-encoded property vector, which may
// itself be a composite such as Bind(Mexico, USA).
func (e *Engine) QueryVector(p, w hdc.Vector) (string, bool, error) {
	unbound, err := e.alg.Bind(p, w)
	if err != nil {
		return "", false, err
	}
	clean, err := e.mem.CleanUp(unbound)
	if err != nil {
		return "", false, err
	}
	sym, ok := e.cb.DecodeExact(clean)
	return sym, ok, nil
}
