// Package vocab loads vocabulary files: the ordered properties, their
// ordered values, and the sampling parameters of a codebook.
//
// A vocabulary file is YAML:
//
//	dims: 10000
//	sparsity: 0.5
//	seed: 7        # optional
//	properties:
//	  - name: Currency
//	    values: [Dollar, Peso]
//	  - name: Color
//	    values: [Red, Yellow]
//
// Loading applies defaults, then the file, then PENTTI_DIMS,
// PENTTI_SPARSITY and PENTTI_SEED from the environment, then validates.
package vocab

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Amansingh-afk/pentti/codebook"
)

// ErrInvalidVocabulary is returned when a vocabulary fails validation.
var ErrInvalidVocabulary = errors.New("vocab: invalid vocabulary")

// Environment overrides.
const (
	EnvDims     = "PENTTI_DIMS"
	EnvSparsity = "PENTTI_SPARSITY"
	EnvSeed     = "PENTTI_SEED"
)

var validate = validator.New()

// Property is one property and its allowed values, in order.
type Property struct {
	Name   string   `yaml:"name" validate:"required"`
	Values []string `yaml:"values" validate:"omitempty,dive,required"`
}

// Config is a parsed vocabulary file.
type Config struct {
	Dims       int        `yaml:"dims" validate:"gt=0"`
	Sparsity   float64    `yaml:"sparsity" validate:"gte=0,lte=1"`
	Seed       *int64     `yaml:"seed,omitempty"`
	Properties []Property `yaml:"properties" validate:"required,min=1,dive"`
}

// DefaultConfig returns the reference parameters with no properties.
func DefaultConfig() Config {
	return Config{Dims: 11, Sparsity: 0.5}
}

// Load reads, overrides from the environment, and validates the
// vocabulary file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read vocabulary: %w", err)
	}
	cfg, err := decode(data)
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes and validates a vocabulary document without consulting
// the environment.
func Parse(data []byte) (Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse: %v", ErrInvalidVocabulary, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDims); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidVocabulary, EnvDims, v, err)
		}
		cfg.Dims = n
	}
	if v := os.Getenv(EnvSparsity); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidVocabulary, EnvSparsity, v, err)
		}
		cfg.Sparsity = f
	}
	if v := os.Getenv(EnvSeed); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidVocabulary, EnvSeed, v, err)
		}
		cfg.Seed = &s
	}
	return nil
}

// Validate checks field constraints and symbol uniqueness across the
// whole vocabulary.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidVocabulary, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidVocabulary, err)
	}
	seen := make(map[string]struct{})
	for _, p := range c.Properties {
		for _, sym := range append([]string{p.Name}, p.Values...) {
			if _, dup := seen[sym]; dup {
				return fmt.Errorf("%w: %w: %q", ErrInvalidVocabulary, codebook.ErrDuplicateSymbol, sym)
			}
			seen[sym] = struct{}{}
		}
	}
	return nil
}

// Vocabulary returns the ordered property names and the property → values
// mapping expected by codebook.Config.
func (c Config) Vocabulary() ([]string, map[string][]string) {
	props := make([]string, len(c.Properties))
	values := make(map[string][]string, len(c.Properties))
	for i, p := range c.Properties {
		props[i] = p.Name
		values[p.Name] = append([]string(nil), p.Values...)
	}
	return props, values
}

// Codebook converts c to a codebook.Config.
func (c Config) Codebook() codebook.Config {
	props, values := c.Vocabulary()
	return codebook.Config{
		Properties: props,
		Values:     values,
		Dims:       c.Dims,
		Sparsity:   c.Sparsity,
	}
}
