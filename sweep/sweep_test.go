package sweep_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amansingh-afk/pentti"
	"github.com/Amansingh-afk/pentti/sweep"
)

// ── demo ──────────────────────────────────────────────────────────────────────

func TestDemo_Answers(t *testing.T) {
	answers, err := sweep.Demo(10000, 0.5, pentti.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, answers, 5)

	want := map[string]string{
		"The currency of USA is":    "Dollar",
		"The currency of Mexico is": "Peso",
		"The shape of Mexico is":    "Square",
		"The dollar of Mexico is":   "Peso",
	}
	for _, a := range answers {
		assert.True(t, a.Found, "cleanup always lands on a codebook symbol: %s", a.Question)
		if sym, ok := want[a.Question]; ok {
			assert.Equal(t, sym, a.Symbol, a.Question)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, sweep.WriteAnswers(&buf, answers))
	assert.Contains(t, buf.String(), "The dollar of Mexico is Peso\n")
}

func TestDemo_InvalidDims(t *testing.T) {
	_, err := sweep.Demo(0, 0.5)
	assert.ErrorIs(t, err, pentti.ErrInvalidConfig)
}

// ── run ───────────────────────────────────────────────────────────────────────

func TestRun_Grid(t *testing.T) {
	res, err := sweep.Run(context.Background(), sweep.Config{
		Dims:       []int{64, 10000},
		Sparsities: []float64{0.4, 0.5},
		Trials:     8,
		Seed:       1,
	})
	require.NoError(t, err)
	require.Len(t, res.Cells, 4)

	// sparsity-major, dims in input order
	assert.Equal(t, 0.4, res.Cells[0].Sparsity)
	assert.Equal(t, 64, res.Cells[0].Dims)
	assert.Equal(t, 10000, res.Cells[1].Dims)
	assert.Equal(t, 0.5, res.Cells[2].Sparsity)

	for _, c := range res.Cells {
		assert.Equal(t, 8, c.Trials)
		assert.GreaterOrEqual(t, c.DollarOfMexico, 0.0)
		assert.LessOrEqual(t, c.DollarOfMexico, 1.0)
	}
	assert.Equal(t, 1.0, res.Cells[3].CurrencyOfUSA, "a 4-pair record at D=10000 answers its own currency")
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	cfg := sweep.Config{Dims: []int{11, 101}, Sparsities: []float64{0.5}, Trials: 20, Seed: 99, Workers: 1}
	a, err := sweep.Run(context.Background(), cfg)
	require.NoError(t, err)
	cfg.Workers = 8
	b, err := sweep.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  sweep.Config
	}{
		{"no dims", sweep.Config{Sparsities: []float64{0.5}, Trials: 1}},
		{"no sparsities", sweep.Config{Dims: []int{11}, Trials: 1}},
		{"no trials", sweep.Config{Dims: []int{11}, Sparsities: []float64{0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sweep.Run(context.Background(), tt.cfg)
			assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
		})
	}
}

func TestRun_TrialErrorPropagates(t *testing.T) {
	_, err := sweep.Run(context.Background(), sweep.Config{
		Dims: []int{11}, Sparsities: []float64{1.5}, Trials: 3,
	})
	assert.ErrorIs(t, err, pentti.ErrInvalidConfig)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep.Run(ctx, sweep.Config{Dims: []int{11}, Sparsities: []float64{0.5}, Trials: 50})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := sweep.WriteTable(&buf, sweep.Result{Cells: []sweep.Cell{
		{Dims: 100, Sparsity: 0.5, Trials: 20, DollarOfMexico: 0.45, CurrencyOfUSA: 1},
	}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "currency of usa")
	assert.Contains(t, buf.String(), "0.450")
	assert.Contains(t, buf.String(), "1.000")
}

// ── fidelity ──────────────────────────────────────────────────────────────────

// Accuracy must not improve as more pairs share one record at fixed D.
func TestFidelity_DegradesWithBundleSize(t *testing.T) {
	pts, err := sweep.Fidelity(context.Background(), sweep.FidelityConfig{
		Dims:        128,
		Sparsity:    0.5,
		BundleSizes: []int{1, 3, 5, 9, 17},
		Trials:      200,
		Seed:        3,
	})
	require.NoError(t, err)
	require.Len(t, pts, 5)

	assert.Equal(t, 1.0, pts[0].Accuracy, "a single bound pair unbinds exactly")
	for i := 1; i < len(pts); i++ {
		assert.Equal(t, pts[i].BundleSize*200, pts[i].Queries)
		assert.LessOrEqual(t, pts[i].Accuracy, pts[i-1].Accuracy+0.03,
			"bundle %d vs %d", pts[i].BundleSize, pts[i-1].BundleSize)
	}
	assert.Less(t, pts[4].Accuracy, pts[0].Accuracy-0.3)

	var buf bytes.Buffer
	require.NoError(t, sweep.WriteFidelity(&buf, pts))
	assert.Contains(t, buf.String(), "bundle size")
}

func TestFidelity_InvalidConfig(t *testing.T) {
	_, err := sweep.Fidelity(context.Background(), sweep.FidelityConfig{Dims: 64, BundleSizes: []int{0}, Trials: 1})
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
	_, err = sweep.Fidelity(context.Background(), sweep.FidelityConfig{Dims: 64, Trials: 1})
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
}

// ── params ────────────────────────────────────────────────────────────────────

func TestParseInts(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"1:10:3", []int{1, 4, 7}},
		{"5:8", []int{5, 6, 7}},
		{"100, 1000,10000", []int{100, 1000, 10000}},
		{"11", []int{11}},
	}
	for _, tt := range tests {
		got, err := sweep.ParseInts(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "1:2:3:4", "1:10:0", "10:1", "a,b", "1:x"} {
		_, err := sweep.ParseInts(bad)
		assert.ErrorIs(t, err, sweep.ErrInvalidConfig, bad)
	}
}

func TestParseFloats(t *testing.T) {
	got, err := sweep.ParseFloats(".3, .4,0.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3, 0.4, 0.5}, got)

	_, err = sweep.ParseFloats(" , ")
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
	_, err = sweep.ParseFloats("half")
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
}

// ── benchmarks ────────────────────────────────────────────────────────────────

func BenchmarkRun_D1000(b *testing.B) {
	cfg := sweep.Config{Dims: []int{1000}, Sparsities: []float64{0.5}, Trials: 10, Seed: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.Run(context.Background(), cfg); err != nil {
			b.Fatal(err)
		}
	}
}
