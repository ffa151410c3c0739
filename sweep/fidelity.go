package sweep

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Amansingh-afk/pentti"
	"github.com/Amansingh-afk/pentti/vocab"
)

// FidelityConfig measures query accuracy as more pairs are bundled into
// one record at a fixed dimension.
type FidelityConfig struct {
	Dims              int
	Sparsity          float64
	BundleSizes       []int // pairs per record; the largest sets the vocabulary size
	ValuesPerProperty int   // default 4
	Trials            int
	Seed              int64
	Workers           int
}

// FidelityPoint is the accuracy over every property queried at one
// bundle size.
type FidelityPoint struct {
	BundleSize int
	Queries    int
	Correct    int
	Accuracy   float64
}

// Fidelity runs Trials independent systems per bundle size. Each trial
// draws a random value for each of the first k properties, bundles the
// bound pairs, and queries all k properties back.
func Fidelity(ctx context.Context, cfg FidelityConfig, opts ...Option) ([]FidelityPoint, error) {
	if cfg.Dims <= 0 || len(cfg.BundleSizes) == 0 || cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: need dims, bundle sizes and a positive trial count", ErrInvalidConfig)
	}
	if cfg.ValuesPerProperty <= 0 {
		cfg.ValuesPerProperty = 4
	}
	for _, k := range cfg.BundleSizes {
		if k <= 0 {
			return nil, fmt.Errorf("%w: bundle size %d", ErrInvalidConfig, k)
		}
	}
	o := applyOptions(opts)
	voc := syntheticVocabulary(slices.Max(cfg.BundleSizes), cfg.ValuesPerProperty, cfg.Dims, cfg.Sparsity)

	seeds := trialSeeds(cfg.Seed, len(cfg.BundleSizes)*cfg.Trials)
	correct := make([]atomic.Int64, len(cfg.BundleSizes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(cfg.Workers))
	for bi, k := range cfg.BundleSizes {
		bi, k := bi, k
		for t := 0; t < cfg.Trials; t++ {
			seed := seeds[bi*cfg.Trials+t]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				n, err := fidelityTrial(voc, k, seed)
				if err != nil {
					return err
				}
				correct[bi].Add(int64(n))
				o.metrics.observeTrial(cfg.Sparsity, time.Since(start).Seconds(), nil)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]FidelityPoint, len(cfg.BundleSizes))
	for i, k := range cfg.BundleSizes {
		q := k * cfg.Trials
		c := int(correct[i].Load())
		out[i] = FidelityPoint{BundleSize: k, Queries: q, Correct: c, Accuracy: float64(c) / float64(q)}
		o.metrics.setAccuracy(fmt.Sprintf("bundle_%d", k), cfg.Dims, cfg.Sparsity, out[i].Accuracy)
		o.log.Debug().Int("bundle_size", k).Float64("accuracy", out[i].Accuracy).Msg("fidelity point")
	}
	return out, nil
}

func syntheticVocabulary(properties, valuesPer, dims int, sparsity float64) vocab.Config {
	cfg := vocab.Config{Dims: dims, Sparsity: sparsity}
	for i := 0; i < properties; i++ {
		p := vocab.Property{Name: fmt.Sprintf("P%d", i)}
		for j := 0; j < valuesPer; j++ {
			p.Values = append(p.Values, fmt.Sprintf("P%d.V%d", i, j))
		}
		cfg.Properties = append(cfg.Properties, p)
	}
	return cfg
}

func fidelityTrial(voc vocab.Config, k int, seed int64) (int, error) {
	sys, err := pentti.NewFromConfig(voc, pentti.WithSeed(seed))
	if err != nil {
		return 0, err
	}
	r := rand.New(rand.NewSource(^seed)) //nolint:gosec
	pairs := make(map[string]string, k)
	for _, p := range voc.Properties[:k] {
		pairs[p.Name] = p.Values[r.Intn(len(p.Values))]
	}
	rec, err := sys.Record(pairs)
	if err != nil {
		return 0, err
	}
	n := 0
	for p, want := range pairs {
		got, ok, err := sys.Query(p, rec)
		if err != nil {
			return 0, err
		}
		if ok && got == want {
			n++
		}
	}
	return n, nil
}
