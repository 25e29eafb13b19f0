// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package interpolate recovers the constant term of the polynomial passing
// through a set of integer points, using exact fraction arithmetic.
package interpolate

import (
	"errors"
	"math/big"

	"github.com/ava-labs/shamir/rational"
)

var (
	ErrSingularMatrix = errors.New("matrix is singular: no unique solution")

	errNoPoints = errors.New("no points to interpolate")
)

// Point is one (x, y) sample of the secret-encoding polynomial.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Solve interprets [points] as k samples of a degree-(k-1) polynomial, solves
// the Vandermonde system for its monomial coefficients by Gaussian elimination
// and returns the constant term truncated to an integer.
//
// For points that lie exactly on a degree-(k-1) polynomial with integer
// coefficients the result is that polynomial's constant term, exactly. A
// system without a unique solution, such as one produced by a repeated
// x-coordinate, fails with [ErrSingularMatrix].
func Solve(points []Point) (*big.Int, error) {
	k := len(points)
	if k == 0 {
		return nil, errNoPoints
	}

	matrix := newVandermonde(points)
	if err := eliminate(matrix); err != nil {
		return nil, err
	}
	coeffs, err := backSubstitute(matrix)
	if err != nil {
		return nil, err
	}

	// The columns are ordered from the highest power of x down to x^0, so the
	// constant term is the last coefficient.
	return coeffs[k-1].BigInt()
}

// newVandermonde builds the k x (k+1) augmented system. Row i encodes
// sum_j coeff_j * x_i^(k-1-j) = y_i.
func newVandermonde(points []Point) [][]rational.Rational {
	k := len(points)
	matrix := make([][]rational.Rational, k)
	for i, point := range points {
		row := make([]rational.Rational, k+1)
		for j := 0; j < k; j++ {
			power := new(big.Int).Exp(point.X, big.NewInt(int64(k-1-j)), nil)
			row[j] = rational.FromBigInt(power)
		}
		row[k] = rational.FromBigInt(point.Y)
		matrix[i] = row
	}
	return matrix
}

// eliminate reduces [matrix] to row echelon form in place, partially pivoting
// at each column on the numerator with the largest absolute value.
// Denominators are never compared; entries built from integers all have
// denominator one, and pivot selection only needs a consistent magnitude
// ordering to keep zero numerators out of the pivot position.
func eliminate(matrix [][]rational.Rational) error {
	k := len(matrix)
	for pivot := 0; pivot < k; pivot++ {
		maxRow := pivot
		maxNum := new(big.Int).Abs(matrix[pivot][pivot].Num())
		for i := pivot + 1; i < k; i++ {
			num := new(big.Int).Abs(matrix[i][pivot].Num())
			if num.Cmp(maxNum) > 0 {
				maxRow = i
				maxNum = num
			}
		}
		matrix[pivot], matrix[maxRow] = matrix[maxRow], matrix[pivot]

		if matrix[pivot][pivot].IsZero() {
			return ErrSingularMatrix
		}

		for i := pivot + 1; i < k; i++ {
			if matrix[i][pivot].IsZero() {
				continue
			}
			factor, err := matrix[i][pivot].Div(matrix[pivot][pivot])
			if err != nil {
				return err
			}
			for j := pivot; j <= k; j++ {
				matrix[i][j] = matrix[i][j].Sub(factor.Mul(matrix[pivot][j]))
			}
		}
	}
	return nil
}

// backSubstitute solves the upper-triangular system left by eliminate.
func backSubstitute(matrix [][]rational.Rational) ([]rational.Rational, error) {
	k := len(matrix)
	coeffs := make([]rational.Rational, k)
	for i := k - 1; i >= 0; i-- {
		// Elimination already rejected zero pivots; re-check rather than
		// divide blind.
		if matrix[i][i].IsZero() {
			return nil, ErrSingularMatrix
		}

		value := matrix[i][k]
		for j := i + 1; j < k; j++ {
			value = value.Sub(matrix[i][j].Mul(coeffs[j]))
		}
		coeff, err := value.Div(matrix[i][i])
		if err != nil {
			return nil, err
		}
		coeffs[i] = coeff
	}
	return coeffs, nil
}
