// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rational

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestNewCanonicalizes(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
	}{
		{
			name:    "already canonical",
			num:     1,
			den:     2,
			wantNum: 1,
			wantDen: 2,
		},
		{
			name:    "common factor removed",
			num:     6,
			den:     4,
			wantNum: 3,
			wantDen: 2,
		},
		{
			name:    "sign moves to numerator",
			num:     1,
			den:     -2,
			wantNum: -1,
			wantDen: 2,
		},
		{
			name:    "double negative",
			num:     -6,
			den:     -4,
			wantNum: 3,
			wantDen: 2,
		},
		{
			name:    "zero numerator",
			num:     0,
			den:     -7,
			wantNum: 0,
			wantDen: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			r, err := New(big.NewInt(tt.num), big.NewInt(tt.den))
			require.NoError(err)
			require.Zero(r.Num().Cmp(big.NewInt(tt.wantNum)))
			require.Zero(r.Den().Cmp(big.NewInt(tt.wantDen)))
		})
	}
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(big.NewInt(1), new(big.Int))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestArithmetic(t *testing.T) {
	require := require.New(t)

	half, err := New(big.NewInt(1), big.NewInt(2))
	require.NoError(err)
	third, err := New(big.NewInt(1), big.NewInt(3))
	require.NoError(err)

	sum := half.Add(third)
	require.Equal("5/6", sum.String())

	diff := half.Sub(third)
	require.Equal("1/6", diff.String())

	product := half.Mul(third)
	require.Equal("1/6", product.String())

	quotient, err := half.Div(third)
	require.NoError(err)
	require.Equal("3/2", quotient.String())
}

func TestDivByZeroFraction(t *testing.T) {
	require := require.New(t)

	one := FromInt64(1)
	zero := FromInt64(0)

	_, err := one.Div(zero)
	require.ErrorIs(err, ErrDivisionByZero)
}

func TestBigIntTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		num, den int64
		want     int64
	}{
		{num: 7, den: 2, want: 3},
		{num: -7, den: 2, want: -3},
		{num: 7, den: -2, want: -3},
		{num: 6, den: 3, want: 2},
		{num: 0, den: 5, want: 0},
	}
	for _, tt := range tests {
		r, err := New(big.NewInt(tt.num), big.NewInt(tt.den))
		require.NoError(t, err)

		got, err := r.BigInt()
		require.NoError(t, err)
		require.Zero(t, got.Cmp(big.NewInt(tt.want)))
	}
}

func TestZeroValueBigIntFails(t *testing.T) {
	var r Rational
	_, err := r.BigInt()
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEqual(t *testing.T) {
	require := require.New(t)

	a, err := New(big.NewInt(2), big.NewInt(4))
	require.NoError(err)
	b, err := New(big.NewInt(1), big.NewInt(2))
	require.NoError(err)
	c, err := New(big.NewInt(-1), big.NewInt(2))
	require.NoError(err)

	require.True(a.Equal(b))
	require.False(a.Equal(c))
	require.True(FromInt64(0).Equal(FromInt64(0)))
}

// Every result of the arithmetic operations must be in canonical form:
// gcd(|num|, |den|) == 1 and den > 0.
func TestCanonicalFormProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	nonZero := gen.Int64().SuchThat(func(v int64) bool { return v != 0 })

	canonical := func(r Rational) bool {
		num, den := r.Num(), r.Den()
		if den.Sign() <= 0 {
			return false
		}
		gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
		return gcd.Cmp(big.NewInt(1)) == 0
	}

	properties.Property("results are canonical", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, err := New(big.NewInt(an), big.NewInt(ad))
			if err != nil {
				return false
			}
			b, err := New(big.NewInt(bn), big.NewInt(bd))
			if err != nil {
				return false
			}

			if !canonical(a.Add(b)) || !canonical(a.Sub(b)) || !canonical(a.Mul(b)) {
				return false
			}
			quotient, err := b.Div(a)
			if a.IsZero() {
				return err != nil
			}
			return err == nil && canonical(quotient)
		},
		gen.Int64(),
		nonZero,
		gen.Int64(),
		nonZero,
	))

	properties.TestingRun(t)
}
