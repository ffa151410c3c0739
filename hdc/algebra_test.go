package hdc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amansingh-afk/pentti/hdc"
)

func TestBinary_ImplementsAlgebra(t *testing.T) {
	var alg hdc.Algebra = hdc.NewBinary(64)
	assert.Equal(t, 64, alg.Dims())
}

func TestBinary_MatchesPackageFunctions(t *testing.T) {
	alg := hdc.NewBinary(dims)
	a, b, c := hdc.Random(dims, 1), hdc.Random(dims, 2), hdc.Random(dims, 3)

	want, err := hdc.Bind(a, b)
	require.NoError(t, err)
	got, err := alg.Bind(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "Binary.Bind must match Bind")

	want, err = hdc.Bundle(a, b, c)
	require.NoError(t, err)
	got, err = alg.Bundle([]hdc.Vector{a, b, c})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "Binary.Bundle must match Bundle")
}

func TestBinary_ProcessIsIdentity(t *testing.T) {
	alg := hdc.NewBinary(dimSmall)
	v := hdc.Random(dimSmall, 9)
	got, err := alg.Process(v)
	require.NoError(t, err)
	assert.True(t, got.Equal(v))
}

func TestBinary_TieRule(t *testing.T) {
	alg := hdc.NewBinary(4)
	got, err := alg.Bundle([]hdc.Vector{
		hdc.FromBits([]uint8{0, 1, 1, 0}),
		hdc.FromBits([]uint8{0, 1, 0, 0}),
	})
	require.NoError(t, err)
	assert.Equal(t, "0110", got.String())
}

func TestBinary_Errors(t *testing.T) {
	alg := hdc.NewBinary(dimSmall)
	wrong := hdc.New(dimSmall + 1)
	right := hdc.New(dimSmall)

	_, err := alg.Bind(wrong, wrong)
	assert.ErrorIs(t, err, hdc.ErrDimensionMismatch, "Bind must reject foreign dims even when operands agree")

	_, err = alg.Bind(right, wrong)
	assert.ErrorIs(t, err, hdc.ErrDimensionMismatch)

	_, err = alg.Bundle([]hdc.Vector{right, wrong})
	assert.ErrorIs(t, err, hdc.ErrDimensionMismatch)

	_, err = alg.Bundle(nil)
	assert.ErrorIs(t, err, hdc.ErrEmptyBundle)

	_, err = alg.Process(wrong)
	assert.ErrorIs(t, err, hdc.ErrDimensionMismatch)
}

func TestNewBinary_NonPositive_Panics(t *testing.T) {
	assert.Panics(t, func() { hdc.NewBinary(0) })
}
