// Package sweep runs the query experiments on the countries vocabulary:
// a one-shot demo, accuracy sweeps over dimension and sparsity, and bundle
// fidelity as records grow. Trials are independent and run in parallel.
package sweep

import (
	"github.com/Amansingh-afk/pentti"
	"github.com/Amansingh-afk/pentti/hdc"
	"github.com/Amansingh-afk/pentti/vocab"
)

// Answer is one demo question and what the system recovered.
type Answer struct {
	Question string
	Symbol   string
	Found    bool
}

// Demo asks the classic questions of a USA record holding only its currency
// and a Mexico record holding currency, shape and color.
func Demo(dims int, sparsity float64, opts ...pentti.Option) ([]Answer, error) {
	sys, err := pentti.NewFromConfig(vocab.Countries(dims, sparsity), opts...)
	if err != nil {
		return nil, err
	}
	usa, err := sys.Record(map[string]string{"Currency": "Dollar"})
	if err != nil {
		return nil, err
	}
	mexico, err := sys.Record(map[string]string{"Currency": "Peso", "Shape": "Square", "Color": "Red"})
	if err != nil {
		return nil, err
	}
	mapping, err := sys.Bind(mexico, usa)
	if err != nil {
		return nil, err
	}

	questions := []struct {
		text     string
		property string
		record   hdc.Vector
	}{
		{"The currency of USA is", "Currency", usa},
		{"The color of USA is", "Color", usa},
		{"The currency of Mexico is", "Currency", mexico},
		{"The shape of Mexico is", "Shape", mexico},
		{"The dollar of Mexico is", "Dollar", mapping},
	}
	out := make([]Answer, 0, len(questions))
	for _, q := range questions {
		sym, ok, err := sys.Query(q.property, q.record)
		if err != nil {
			return nil, err
		}
		out = append(out, Answer{Question: q.text, Symbol: sym, Found: ok})
	}
	return out, nil
}
