// Package codebook assigns every property and value symbol of a vocabulary
// a freshly sampled binary hypervector and provides exact lookup in both
// directions.
//
// Symbols are enumerated properties first, each followed by its values, in
// configured order. That enumeration order is the tie-break order for
// nearest-neighbour search.
package codebook

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/Amansingh-afk/pentti/hdc"
)

// Config holds the vocabulary and sampling parameters of a Codebook.
type Config struct {
	Properties []string            // ordered property names
	Values     map[string][]string // property → ordered value names
	Dims       int                 // hypervector dimension (default 11)
	Sparsity   float64             // expected fraction of 0 bits per vector (default 0.5)
}

// DefaultConfig returns an empty vocabulary with the reference parameters.
// D=11 suits interactive experiments; real use scales it
// to hundreds or thousands.
func DefaultConfig() Config {
	return Config{
		Values:   map[string][]string{},
		Dims:     11,
		Sparsity: 0.5,
	}
}

// Option configures construction of a Codebook.
type Option func(*options)

type options struct {
	rng *rand.Rand
	log zerolog.Logger
}

// WithSeed makes sampling deterministic. Without it every Codebook draws
// from a time-seeded source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) } //nolint:gosec
}

// WithRand samples vectors from r. r is used only during New and must not
// be shared with concurrent callers.
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rng = r } }

// WithLogger sets the logger used during construction (default: disabled).
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// Codebook is an immutable symbol ↔ hypervector table.
// It is safe for concurrent use.
type Codebook struct {
	dims       int
	sparsity   float64
	index      map[string]int
	symbols    []string
	vectors    []hdc.Vector
	properties []string
	values     map[string][]string
	owner      map[string]string // value → property
}

// New builds a Codebook, sampling one vector per symbol in enumeration
// order. Each bit is 1 with probability 1-cfg.Sparsity.
// On error no Codebook is returned.
func New(cfg Config, opts ...Option) (*Codebook, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	cb := &Codebook{
		dims:     cfg.Dims,
		sparsity: cfg.Sparsity,
		index:    make(map[string]int),
		values:   make(map[string][]string, len(cfg.Properties)),
		owner:    make(map[string]string),
	}
	for _, p := range cfg.Properties {
		if err := cb.add(p); err != nil {
			return nil, err
		}
		cb.properties = append(cb.properties, p)
		vals := cfg.Values[p]
		for _, v := range vals {
			if err := cb.add(v); err != nil {
				return nil, err
			}
			cb.owner[v] = p
		}
		cb.values[p] = append([]string(nil), vals...)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}
	cb.vectors = make([]hdc.Vector, len(cb.symbols))
	for i := range cb.symbols {
		v, err := hdc.Sample(cfg.Dims, cfg.Sparsity, rng)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cb.vectors[i] = v
	}

	o.log.Debug().
		Int("dims", cb.dims).
		Float64("sparsity", cb.sparsity).
		Int("properties", len(cb.properties)).
		Int("symbols", len(cb.symbols)).
		Msg("codebook built")
	return cb, nil
}

func validate(cfg Config) error {
	if cfg.Dims <= 0 {
		return fmt.Errorf("%w: dims must be positive, got %d", ErrInvalidConfig, cfg.Dims)
	}
	if cfg.Sparsity < 0 || cfg.Sparsity > 1 || cfg.Sparsity != cfg.Sparsity {
		return fmt.Errorf("%w: sparsity must be in [0, 1], got %v", ErrInvalidConfig, cfg.Sparsity)
	}
	if len(cfg.Properties) == 0 {
		return fmt.Errorf("%w: no properties", ErrInvalidConfig)
	}
	props := make(map[string]struct{}, len(cfg.Properties))
	for _, p := range cfg.Properties {
		props[p] = struct{}{}
	}
	for p := range cfg.Values {
		if _, ok := props[p]; !ok {
			return fmt.Errorf("%w: values given for property %q", ErrUnknownSymbol, p)
		}
	}
	return nil
}

func (cb *Codebook) add(sym string) error {
	if sym == "" {
		return fmt.Errorf("%w: empty symbol name", ErrInvalidConfig)
	}
	if _, dup := cb.index[sym]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
	}
	cb.index[sym] = len(cb.symbols)
	cb.symbols = append(cb.symbols, sym)
	return nil
}

// Encode returns the vector assigned to sym.
func (cb *Codebook) Encode(sym string) (hdc.Vector, error) {
	i, ok := cb.index[sym]
	if !ok {
		return hdc.Vector{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	return cb.vectors[i], nil
}

// DecodeExact returns the first symbol, in enumeration order, whose vector
// equals v bit for bit. It reports false when no vector matches; composite
// vectors usually do not.
func (cb *Codebook) DecodeExact(v hdc.Vector) (string, bool) {
	for i, w := range cb.vectors {
		if w.Equal(v) {
			return cb.symbols[i], true
		}
	}
	return "", false
}

// Len returns the number of symbols.
func (cb *Codebook) Len() int { return len(cb.symbols) }

// Dims returns the vector dimension.
func (cb *Codebook) Dims() int { return cb.dims }

// Sparsity returns the sampling sparsity the vectors were drawn with.
func (cb *Codebook) Sparsity() float64 { return cb.sparsity }

// Symbol returns the i-th symbol in enumeration order.
func (cb *Codebook) Symbol(i int) string { return cb.symbols[i] }

// Vector returns the vector of the i-th symbol in enumeration order.
func (cb *Codebook) Vector(i int) hdc.Vector { return cb.vectors[i] }

// Index returns the enumeration position of sym.
func (cb *Codebook) Index(sym string) (int, bool) {
	i, ok := cb.index[sym]
	return i, ok
}

// Symbols returns all symbols in enumeration order.
func (cb *Codebook) Symbols() []string {
	return append([]string(nil), cb.symbols...)
}

// Properties returns the property names in configured order.
func (cb *Codebook) Properties() []string {
	return append([]string(nil), cb.properties...)
}

// ValuesOf returns the values of property in configured order.
func (cb *Codebook) ValuesOf(property string) ([]string, error) {
	vals, ok := cb.values[property]
	if !ok {
		return nil, fmt.Errorf("%w: property %q", ErrUnknownSymbol, property)
	}
	return append([]string(nil), vals...), nil
}

// IsProperty reports whether sym names a property.
func (cb *Codebook) IsProperty(sym string) bool {
	_, ok := cb.values[sym]
	return ok
}

// PropertyOf returns the property a value belongs to.
func (cb *Codebook) PropertyOf(value string) (string, bool) {
	p, ok := cb.owner[value]
	return p, ok
}
