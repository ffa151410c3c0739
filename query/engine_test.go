package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amansingh-afk/pentti/cleanup"
	"github.com/Amansingh-afk/pentti/codebook"
	"github.com/Amansingh-afk/pentti/hdc"
	"github.com/Amansingh-afk/pentti/query"
)

type fixture struct {
	cb  *codebook.Codebook
	alg *hdc.Binary
	eng *query.Engine
}

func newFixture(t *testing.T, dims int, seed int64) fixture {
	t.Helper()
	cfg := codebook.Config{
		Properties: []string{"Color", "Shape", "Currency", "Language"},
		Values: map[string][]string{
			"Color":    {"Red", "Yellow"},
			"Shape":    {"Round", "Square", "Moon"},
			"Currency": {"Dollar", "Peso"},
			"Language": {"English", "Spanish"},
		},
		Dims:     dims,
		Sparsity: 0.5,
	}
	cb, err := codebook.New(cfg, codebook.WithSeed(seed))
	require.NoError(t, err)
	alg := hdc.NewBinary(dims)
	return fixture{cb: cb, alg: alg, eng: query.New(cb, cleanup.New(cb, alg), alg)}
}

func (f fixture) pair(t *testing.T, property, value string) hdc.Vector {
	t.Helper()
	p, err := f.cb.Encode(property)
	require.NoError(t, err)
	v, err := f.cb.Encode(value)
	require.NoError(t, err)
	b, err := f.alg.Bind(p, v)
	require.NoError(t, err)
	return b
}

func (f fixture) record(t *testing.T, pairs ...[2]string) hdc.Vector {
	t.Helper()
	vs := make([]hdc.Vector, len(pairs))
	for i, p := range pairs {
		vs[i] = f.pair(t, p[0], p[1])
	}
	w, err := f.alg.Bundle(vs)
	require.NoError(t, err)
	return w
}

func TestQuery_SingleBoundPair(t *testing.T) {
	f := newFixture(t, 1000, 1)
	usa := f.record(t, [2]string{"Currency", "Dollar"})

	got, ok, err := f.eng.Query("Currency", usa)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Dollar", got)
}

func TestQuery_FullRecords(t *testing.T) {
	f := newFixture(t, 10000, 2)
	usa := f.record(t,
		[2]string{"Currency", "Dollar"}, [2]string{"Color", "Red"},
		[2]string{"Shape", "Round"}, [2]string{"Language", "English"})
	mexico := f.record(t,
		[2]string{"Currency", "Peso"}, [2]string{"Color", "Yellow"},
		[2]string{"Shape", "Square"}, [2]string{"Language", "Spanish"})

	for prop, want := range map[string]string{"Currency": "Dollar", "Color": "Red", "Shape": "Round", "Language": "English"} {
		got, ok, err := f.eng.Query(prop, usa)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got, "USA %s", prop)
	}
	for prop, want := range map[string]string{"Currency": "Peso", "Color": "Yellow", "Shape": "Square", "Language": "Spanish"} {
		got, ok, err := f.eng.Query(prop, mexico)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got, "Mexico %s", prop)
	}
}

// The dollar of Mexico: binding the two records maps each USA value onto
// the Mexican value of the same property. Records use an odd number of
// pairs so the majority vote has no ties biasing it toward 1.
func TestQueryVector_DollarOfMexico(t *testing.T) {
	f := newFixture(t, 10000, 3)
	usa := f.record(t,
		[2]string{"Currency", "Dollar"}, [2]string{"Color", "Red"}, [2]string{"Shape", "Round"})
	mexico := f.record(t,
		[2]string{"Currency", "Peso"}, [2]string{"Color", "Yellow"}, [2]string{"Shape", "Square"})
	mapping, err := f.alg.Bind(mexico, usa)
	require.NoError(t, err)

	got, ok, err := f.eng.Query("Dollar", mapping)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Peso", got)

	dollar, err := f.cb.Encode("Dollar")
	require.NoError(t, err)
	got, ok, err = f.eng.QueryVector(dollar, mapping)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Peso", got)
}

// At the reference dimension the recovered vector is exactly the value's
// vector even if a rare collision makes an earlier symbol share it.
func TestQuery_ReferenceDimension(t *testing.T) {
	f := newFixture(t, 11, 4)
	usa := f.record(t, [2]string{"Currency", "Dollar"})

	got, ok, err := f.eng.Query("Currency", usa)
	require.NoError(t, err)
	require.True(t, ok)
	dollar, _ := f.cb.Encode("Dollar")
	recovered, _ := f.cb.Encode(got)
	assert.True(t, recovered.Equal(dollar))
}

func TestQuery_UnknownProperty(t *testing.T) {
	f := newFixture(t, 64, 5)
	_, _, err := f.eng.Query("Anthem", hdc.New(64))
	assert.ErrorIs(t, err, codebook.ErrUnknownSymbol)
}

func TestQuery_DimensionMismatch(t *testing.T) {
	f := newFixture(t, 64, 6)
	_, _, err := f.eng.Query("Currency", hdc.New(65))
	assert.ErrorIs(t, err, hdc.ErrDimensionMismatch)

	_, _, err = f.eng.QueryVector(hdc.New(65), hdc.New(65))
	assert.ErrorIs(t, err, hdc.ErrDimensionMismatch)
}
