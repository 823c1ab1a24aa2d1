package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opaque struct{ name string }

func TestTraitOfResolvesBuiltins(t *testing.T) {
	require.True(t, TraitOf[float64]().Linear())
	require.True(t, TraitOf[float32]().Linear())
	require.True(t, TraitOf[int]().Linear())
	require.True(t, TraitOf[uint16]().Linear())
	require.False(t, TraitOf[*int]().Linear())
	require.False(t, TraitOf[opaque]().Linear())
	require.False(t, TraitOf[string]().Linear())

	require.IsType(t, FloatTrait[float64]{}, TraitOf[float64]())
	require.IsType(t, IntTrait[int32]{}, TraitOf[int32]())
	require.IsType(t, StepTrait[opaque]{}, TraitOf[opaque]())
}

func TestZeroValues(t *testing.T) {
	assert.Equal(t, 0.0, TraitOf[float64]().Zero())
	assert.Equal(t, 0, TraitOf[int]().Zero())
	assert.Nil(t, TraitOf[*int]().Zero())
	assert.Equal(t, opaque{}, TraitOf[opaque]().Zero())
}

func TestFloatMix(t *testing.T) {
	tr := FloatTrait[float64]{}
	tests := []struct {
		a, b, u, want float64
	}{
		{a: 2, b: 4, u: 0, want: 2},
		{a: 2, b: 4, u: 1, want: 4},
		{a: 2, b: 4, u: 0.5, want: 3},
		{a: 2, b: 4, u: 0.25, want: 2.5},
		{a: -1, b: 1, u: 0.75, want: 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tr.Mix(tt.a, tt.b, tt.u), 1e-12, "mix(%v, %v, %v)", tt.a, tt.b, tt.u)
	}
}

func TestIntMixRounds(t *testing.T) {
	tr := IntTrait[int]{}
	assert.Equal(t, 5, tr.Mix(5, 9, 0))
	assert.Equal(t, 6, tr.Mix(5, 9, 0.3)) // 6.2
	assert.Equal(t, 7, tr.Mix(5, 9, 0.5))
	assert.Equal(t, 8, tr.Mix(5, 9, 0.7))    // 7.8
	assert.Equal(t, -2, tr.Mix(-1, -2, 0.5)) // -1.5, half away from zero
}

func TestStepMix(t *testing.T) {
	tr := StepTrait[opaque]{}
	a, b := opaque{"a"}, opaque{"b"}
	assert.Equal(t, a, tr.Mix(a, b, 0))
	assert.Equal(t, a, tr.Mix(a, b, 0.49))
	assert.Equal(t, b, tr.Mix(a, b, 0.5))
	assert.Equal(t, b, tr.Mix(a, b, 1))
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Nearest, Linear, Spline} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}

	got, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, Linear, got)

	_, err = ParseMode("cubic")
	require.Error(t, err)
	require.Equal(t, "mode(7)", Mode(7).String())
}

func TestModeInterpolating(t *testing.T) {
	assert.False(t, Nearest.Interpolating())
	assert.True(t, Linear.Interpolating())
	assert.True(t, Spline.Interpolating())
}
