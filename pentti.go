// Package pentti encodes symbolic records as binary hypervectors.
// Properties and their values are assigned random vectors; a record is the
// majority bundle of XOR-bound property/value pairs, and Query recovers the
// value held for a property by unbinding and nearest-neighbour cleanup.
//
// Basic usage:
//
//	sys, err := pentti.New(
//		[]string{"Currency"},
//		map[string][]string{"Currency": {"Dollar", "Peso"}},
//		pentti.WithDims(10000),
//	)
//	pair, _ := sys.BindSymbols("Currency", "Dollar")
//	usa, _ := sys.Bundle(pair)
//	v, ok, _ := sys.Query("Currency", usa) // "Dollar", true
package pentti

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Amansingh-afk/pentti/cleanup"
	"github.com/Amansingh-afk/pentti/codebook"
	"github.com/Amansingh-afk/pentti/hdc"
	"github.com/Amansingh-afk/pentti/query"
	"github.com/Amansingh-afk/pentti/vocab"
)

// System is one vocabulary with its algebra, cleanup memory and query
// engine. It is immutable after New and safe for concurrent use.
type System struct {
	cb  *codebook.Codebook
	alg hdc.Algebra
	mem *cleanup.Memory
	eng *query.Engine
}

// Option configures a System.
type Option func(*sysOptions)

type sysOptions struct {
	dims       int
	sparsity   float64
	seed       int64
	seeded     bool
	log        zerolog.Logger
	newAlgebra func(dims int) hdc.Algebra
}

func defaultOptions() sysOptions {
	return sysOptions{
		dims:     11,
		sparsity: 0.5,
		log:      zerolog.Nop(),
		newAlgebra: func(dims int) hdc.Algebra {
			return hdc.NewBinary(dims)
		},
	}
}

// WithDims sets the hypervector dimension (default 11).
// Recovery improves with dimension; experiments typically use thousands.
func WithDims(n int) Option { return func(o *sysOptions) { o.dims = n } }

// WithSparsity sets the expected fraction of 0 bits in sampled vectors
// (default 0.5). Each bit is 1 with probability 1-p.
func WithSparsity(p float64) Option { return func(o *sysOptions) { o.sparsity = p } }

// WithSeed makes vector sampling reproducible.
func WithSeed(s int64) Option {
	return func(o *sysOptions) { o.seed, o.seeded = s, true }
}

// WithLogger sets the logger (default: disabled).
func WithLogger(l zerolog.Logger) Option { return func(o *sysOptions) { o.log = l } }

// WithAlgebra replaces the binary nearest-neighbour algebra. fn is called
// once with the configured dimension.
func WithAlgebra(fn func(dims int) hdc.Algebra) Option {
	return func(o *sysOptions) { o.newAlgebra = fn }
}

// New builds a System over the given properties and their values.
func New(properties []string, values map[string][]string, opts ...Option) (*System, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cbOpts := []codebook.Option{codebook.WithLogger(o.log)}
	if o.seeded {
		cbOpts = append(cbOpts, codebook.WithSeed(o.seed))
	}
	cb, err := codebook.New(codebook.Config{
		Properties: properties,
		Values:     values,
		Dims:       o.dims,
		Sparsity:   o.sparsity,
	}, cbOpts...)
	if err != nil {
		o.log.Error().Err(err).Msg("build codebook")
		return nil, err
	}

	alg := o.newAlgebra(cb.Dims())
	if alg == nil || alg.Dims() != cb.Dims() {
		return nil, fmt.Errorf("%w: algebra does not operate on %d-dimensional vectors", ErrDimensionMismatch, cb.Dims())
	}
	mem := cleanup.New(cb, alg)
	return &System{
		cb:  cb,
		alg: alg,
		mem: mem,
		eng: query.New(cb, mem, alg),
	}, nil
}

// NewFromConfig builds a System from a loaded vocabulary file. Options
// passed here override the file's dims, sparsity and seed.
func NewFromConfig(cfg vocab.Config, opts ...Option) (*System, error) {
	base := []Option{WithDims(cfg.Dims), WithSparsity(cfg.Sparsity)}
	if cfg.Seed != nil {
		base = append(base, WithSeed(*cfg.Seed))
	}
	props, values := cfg.Vocabulary()
	return New(props, values, append(base, opts...)...)
}

// Codebook returns the underlying symbol table.
func (s *System) Codebook() *codebook.Codebook { return s.cb }

// Dims returns the hypervector dimension.
func (s *System) Dims() int { return s.cb.Dims() }

// Encode returns the vector of a symbol.
func (s *System) Encode(sym string) (hdc.Vector, error) { return s.cb.Encode(sym) }

// DecodeExact returns the symbol whose vector equals v exactly.
func (s *System) DecodeExact(v hdc.Vector) (string, bool) { return s.cb.DecodeExact(v) }

// Bind associates two vectors.
func (s *System) Bind(a, b hdc.Vector) (hdc.Vector, error) { return s.alg.Bind(a, b) }

// BindSymbols binds the vectors of two symbols, typically a property and
// one of its values.
func (s *System) BindSymbols(a, b string) (hdc.Vector, error) {
	va, err := s.cb.Encode(a)
	if err != nil {
		return hdc.Vector{}, err
	}
	vb, err := s.cb.Encode(b)
	if err != nil {
		return hdc.Vector{}, err
	}
	return s.alg.Bind(va, vb)
}

// Bundle superimposes vectors into one composite.
func (s *System) Bundle(vecs ...hdc.Vector) (hdc.Vector, error) { return s.alg.Bundle(vecs) }

// Record bundles the bound pairs of a property → value map. Pairs are
// bound in codebook order so the result does not depend on map iteration.
// Every value must belong to its property.
func (s *System) Record(pairs map[string]string) (hdc.Vector, error) {
	if len(pairs) == 0 {
		return hdc.Vector{}, ErrEmptyBundle
	}
	for p, v := range pairs {
		if owner, ok := s.cb.PropertyOf(v); !ok || owner != p {
			return hdc.Vector{}, fmt.Errorf("%w: %q is not a value of %q", ErrUnknownSymbol, v, p)
		}
	}
	vecs := make([]hdc.Vector, 0, len(pairs))
	for _, p := range s.cb.Properties() {
		v, ok := pairs[p]
		if !ok {
			continue
		}
		b, err := s.BindSymbols(p, v)
		if err != nil {
			return hdc.Vector{}, err
		}
		vecs = append(vecs, b)
	}
	return s.alg.Bundle(vecs)
}

// CleanUp returns the codebook vector nearest to v.
func (s *System) CleanUp(v hdc.Vector) (hdc.Vector, error) { return s.mem.CleanUp(v) }

// Nearest returns the nearest codebook entry to v with its distance.
func (s *System) Nearest(v hdc.Vector) (cleanup.Match, error) { return s.mem.Nearest(v) }

// Query returns the value w holds for property.
func (s *System) Query(property string, w hdc.Vector) (string, bool, error) {
	return s.eng.Query(property, w)
}

// QueryVector is Query with an already-encoded, possibly composite,
// property vector.
func (s *System) QueryVector(p, w hdc.Vector) (string, bool, error) {
	return s.eng.QueryVector(p, w)
}
