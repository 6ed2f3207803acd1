package coeff_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/stoich/coeff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rats(tb testing.TB, lits ...string) []*big.Rat {
	tb.Helper()
	out := make([]*big.Rat, len(lits))
	for i, s := range lits {
		r, ok := new(big.Rat).SetString(s)
		require.True(tb, ok, "bad literal %q", s)
		out[i] = r
	}

	return out
}

func TestNormalize_Valid(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []int64
	}{
		{"water", []string{"1", "1/2", "1"}, []int64{2, 1, 2}},
		{"rust", []string{"2", "3/2", "1"}, []int64{4, 3, 2}},
		{"propane", []string{"1/4", "5/4", "3/4", "1"}, []int64{1, 5, 3, 4}},
		{"common factor", []string{"6", "4", "2"}, []int64{3, 2, 1}},
		{"mixed denominators", []string{"1/6", "1/4", "1/3"}, []int64{2, 3, 4}},
		{"identity", []string{"1", "1"}, []int64{1, 1}},
		{"single", []string{"7/3"}, []int64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coeff.Normalize(rats(t, tc.in...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, int64(1), coeff.GCD64(got...))
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := coeff.Normalize(nil)
	require.ErrorIs(t, err, coeff.ErrEmptyVector)

	_, err = coeff.Normalize([]*big.Rat{big.NewRat(1, 1), nil})
	require.ErrorIs(t, err, coeff.ErrNilEntry)

	_, err = coeff.Normalize(rats(t, "1", "0", "2"))
	require.ErrorIs(t, err, coeff.ErrNonPositive)

	_, err = coeff.Normalize(rats(t, "-1", "1"))
	require.ErrorIs(t, err, coeff.ErrNonPositive)

	huge := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 70))
	_, err = coeff.Normalize([]*big.Rat{huge, big.NewRat(1, 1)})
	require.ErrorIs(t, err, coeff.ErrOverflow)
}

func TestLCMAndGCD(t *testing.T) {
	assert.Equal(t, "12", coeff.LCM(big.NewInt(4), big.NewInt(-6)).String())
	assert.Equal(t, "0", coeff.LCM(big.NewInt(0), big.NewInt(5)).String())
	assert.Equal(t, "6", coeff.GCD(big.NewInt(12), big.NewInt(-18), big.NewInt(30)).String())
	assert.Equal(t, "0", coeff.GCD().String())
	assert.Equal(t, int64(5), coeff.GCD64(10, -15, 25))
	assert.Equal(t, int64(0), coeff.GCD64())
}
