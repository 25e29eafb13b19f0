// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package interpolate

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func newPoint(x, y int64) Point {
	return Point{
		X: big.NewInt(x),
		Y: big.NewInt(y),
	}
}

func TestSolveQuadratic(t *testing.T) {
	require := require.New(t)

	// x^2 + x + 1
	secret, err := Solve([]Point{
		newPoint(1, 3),
		newPoint(2, 7),
		newPoint(3, 13),
	})
	require.NoError(err)
	require.Zero(secret.Cmp(big.NewInt(1)))
}

func TestSolveLine(t *testing.T) {
	require := require.New(t)

	// 2x + 3
	secret, err := Solve([]Point{
		newPoint(1, 5),
		newPoint(2, 7),
	})
	require.NoError(err)
	require.Zero(secret.Cmp(big.NewInt(3)))
}

func TestSolveConstant(t *testing.T) {
	require := require.New(t)

	secret, err := Solve([]Point{newPoint(4, 42)})
	require.NoError(err)
	require.Zero(secret.Cmp(big.NewInt(42)))
}

func TestSolveNoPoints(t *testing.T) {
	_, err := Solve(nil)
	require.ErrorIs(t, err, errNoPoints)
}

// A repeated x-coordinate leaves two identical power rows, so elimination
// zeroes an entire row and the pivot scan finds nothing usable.
func TestSolveDuplicateXIsSingular(t *testing.T) {
	_, err := Solve([]Point{
		newPoint(2, 5),
		newPoint(2, 7),
	})
	require.ErrorIs(t, err, ErrSingularMatrix)
}

func TestSolveDuplicatePointIsSingular(t *testing.T) {
	_, err := Solve([]Point{
		newPoint(3, 11),
		newPoint(3, 11),
	})
	require.ErrorIs(t, err, ErrSingularMatrix)
}

// The arithmetic is exact fractions over big integers, so coefficients far
// beyond 64 bits must round-trip without loss.
func TestSolveLargeCoefficients(t *testing.T) {
	require := require.New(t)

	constant, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	require.True(ok)
	leading, ok := new(big.Int).SetString("987654321098765432109876543210", 10)
	require.True(ok)

	// leading * x^2 + constant
	points := make([]Point, 3)
	for i := range points {
		x := big.NewInt(int64(i + 1))
		y := new(big.Int).Mul(leading, new(big.Int).Mul(x, x))
		y.Add(y, constant)
		points[i] = Point{X: x, Y: y}
	}

	secret, err := Solve(points)
	require.NoError(err)
	require.Zero(secret.Cmp(constant))
}

func evalPolynomial(coeffs []int64, x *big.Int) *big.Int {
	// Horner, coeffs ordered from the constant term up.
	y := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, big.NewInt(coeffs[i]))
	}
	return y
}

// For any polynomial with integer coefficients, solving on exact samples
// returns the constant term exactly.
func TestSolveRoundTripProperty(t *testing.T) {
	// Keep generated slice lengths inside the SuchThat filter's 1..7 bound.
	// With the default MaxSize of 100 nearly every slice is discarded, and
	// each discard grows the generation size further, so gopter gives up
	// before reaching its quota of passing cases.
	parameters := gopter.DefaultTestParameters()
	parameters.MinSize = 1
	parameters.MaxSize = 8

	properties := gopter.NewProperties(parameters)

	properties.Property("recovers the constant term", prop.ForAll(
		func(coeffs []int64, xOffset int64) bool {
			k := len(coeffs)
			points := make([]Point, k)
			for i := range points {
				x := big.NewInt(xOffset + int64(i))
				points[i] = Point{
					X: x,
					Y: evalPolynomial(coeffs, x),
				}
			}

			secret, err := Solve(points)
			if err != nil {
				return false
			}
			return secret.Cmp(big.NewInt(coeffs[0])) == 0
		},
		gen.SliceOf(gen.Int64Range(-1_000_000, 1_000_000)).SuchThat(func(coeffs []int64) bool {
			return len(coeffs) >= 1 && len(coeffs) <= 7
		}),
		gen.Int64Range(-1_000, 1_000),
	))

	properties.TestingRun(t)
}
