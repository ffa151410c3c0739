package sweep

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Amansingh-afk/pentti"
	"github.com/Amansingh-afk/pentti/vocab"
)

// ErrInvalidConfig is returned for empty parameter grids or non-positive
// trial counts.
var ErrInvalidConfig = errors.New("sweep: invalid config")

// Query labels used in results and metrics.
const (
	QueryDollarOfMexico = "dollar_of_mexico"
	QueryCurrencyOfUSA  = "currency_of_usa"
)

// Config is a dimension × sparsity grid with a trial count per cell.
type Config struct {
	Dims       []int
	Sparsities []float64
	Trials     int
	Seed       int64 // master seed; every trial derives its own from it
	Workers    int   // parallel trials (default GOMAXPROCS)
}

// Cell is the accuracy of both queries at one grid point.
type Cell struct {
	Dims           int
	Sparsity       float64
	Trials         int
	DollarOfMexico float64
	CurrencyOfUSA  float64
}

// Result holds cells sparsity-major, then by dimension, in input order.
type Result struct {
	Cells []Cell
}

// Option configures Run and Fidelity.
type Option func(*runOptions)

type runOptions struct {
	metrics *Metrics
	log     zerolog.Logger
}

// WithMetrics records trial counts, durations and accuracies in m.
func WithMetrics(m *Metrics) Option { return func(o *runOptions) { o.metrics = m } }

// WithLogger sets the progress logger (default: disabled).
func WithLogger(l zerolog.Logger) Option { return func(o *runOptions) { o.log = l } }

func applyOptions(opts []Option) runOptions {
	o := runOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Run builds Trials fresh systems per cell, encodes full USA and Mexico
// records, and measures how often "the dollar of Mexico" yields Peso and
// "the currency of USA" yields Dollar. Results are deterministic for a
// given Seed regardless of Workers.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	if len(cfg.Dims) == 0 || len(cfg.Sparsities) == 0 || cfg.Trials <= 0 {
		return Result{}, fmt.Errorf("%w: need dims, sparsities and a positive trial count", ErrInvalidConfig)
	}
	o := applyOptions(opts)

	cells := make([]Cell, 0, len(cfg.Dims)*len(cfg.Sparsities))
	for _, sp := range cfg.Sparsities {
		for _, d := range cfg.Dims {
			cells = append(cells, Cell{Dims: d, Sparsity: sp, Trials: cfg.Trials})
		}
	}
	seeds := trialSeeds(cfg.Seed, len(cells)*cfg.Trials)
	dollar := make([]atomic.Int64, len(cells))
	currency := make([]atomic.Int64, len(cells))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(cfg.Workers))
	for ci := range cells {
		ci := ci
		for t := 0; t < cfg.Trials; t++ {
			seed := seeds[ci*cfg.Trials+t]
			cell := cells[ci]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				okDollar, okCurrency, err := countriesTrial(cell.Dims, cell.Sparsity, seed)
				if err != nil {
					return err
				}
				if okDollar {
					dollar[ci].Add(1)
				}
				if okCurrency {
					currency[ci].Add(1)
				}
				o.metrics.observeTrial(cell.Sparsity, time.Since(start).Seconds(), map[string]bool{
					QueryDollarOfMexico: okDollar,
					QueryCurrencyOfUSA:  okCurrency,
				})
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for i := range cells {
		c := &cells[i]
		c.DollarOfMexico = float64(dollar[i].Load()) / float64(c.Trials)
		c.CurrencyOfUSA = float64(currency[i].Load()) / float64(c.Trials)
		o.metrics.setAccuracy(QueryDollarOfMexico, c.Dims, c.Sparsity, c.DollarOfMexico)
		o.metrics.setAccuracy(QueryCurrencyOfUSA, c.Dims, c.Sparsity, c.CurrencyOfUSA)
		o.log.Debug().
			Int("dims", c.Dims).
			Float64("sparsity", c.Sparsity).
			Float64(QueryDollarOfMexico, c.DollarOfMexico).
			Float64(QueryCurrencyOfUSA, c.CurrencyOfUSA).
			Msg("cell done")
	}
	o.log.Info().Int("cells", len(cells)).Int("trials", len(seeds)).Msg("sweep finished")
	return Result{Cells: cells}, nil
}

func countriesTrial(dims int, sparsity float64, seed int64) (dollarOfMexico, currencyOfUSA bool, err error) {
	sys, err := pentti.NewFromConfig(vocab.Countries(dims, sparsity), pentti.WithSeed(seed))
	if err != nil {
		return false, false, err
	}
	usa, err := sys.Record(map[string]string{
		"Currency": "Dollar", "Color": "Red", "Shape": "Round", "Language": "English",
	})
	if err != nil {
		return false, false, err
	}
	mexico, err := sys.Record(map[string]string{
		"Currency": "Peso", "Color": "Yellow", "Shape": "Square", "Language": "Spanish",
	})
	if err != nil {
		return false, false, err
	}
	mapping, err := sys.Bind(mexico, usa)
	if err != nil {
		return false, false, err
	}

	sym, ok, err := sys.Query("Dollar", mapping)
	if err != nil {
		return false, false, err
	}
	dollarOfMexico = ok && sym == "Peso"

	sym, ok, err = sys.Query("Currency", usa)
	if err != nil {
		return false, false, err
	}
	currencyOfUSA = ok && sym == "Dollar"
	return dollarOfMexico, currencyOfUSA, nil
}

// trialSeeds derives n per-trial seeds from a master seed so that results
// do not depend on scheduling order.
func trialSeeds(master int64, n int) []int64 {
	r := rand.New(rand.NewSource(master)) //nolint:gosec
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int63()
	}
	return out
}
