// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rational

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrDivisionByZero = errors.New("division by zero")

// Rational is an exact fraction over arbitrary-precision integers.
//
// Invariant: values are always held in canonical form. The numerator and
// denominator share no common factor, the denominator is positive, and the
// sign of the value is carried by the numerator. Rationals are immutable;
// every operation allocates a fresh value.
type Rational struct {
	num, den *big.Int
}

// New returns num/den in canonical form. A zero denominator fails with
// [ErrDivisionByZero].
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrDivisionByZero)
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromBigInt returns num/1.
func FromBigInt(num *big.Int) Rational {
	return Rational{
		num: new(big.Int).Set(num),
		den: big.NewInt(1),
	}
}

// FromInt64 returns num/1.
func FromInt64(num int64) Rational {
	return Rational{
		num: big.NewInt(num),
		den: big.NewInt(1),
	}
}

// reduce canonicalizes num/den in place and takes ownership of both.
//
// Assumes den != 0.
func reduce(num, den *big.Int) Rational {
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	num.Quo(num, gcd)
	den.Quo(den, gcd)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Rational{num: num, den: den}
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	num := new(big.Int).Mul(r.num, o.den)
	num.Add(num, new(big.Int).Mul(o.num, r.den))
	return reduce(num, new(big.Int).Mul(r.den, o.den))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Mul(r.num, o.den)
	num.Sub(num, new(big.Int).Mul(o.num, r.den))
	return reduce(num, new(big.Int).Mul(r.den, o.den))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return reduce(
		new(big.Int).Mul(r.num, o.num),
		new(big.Int).Mul(r.den, o.den),
	)
}

// Div returns r / o. Dividing by a zero fraction fails with
// [ErrDivisionByZero].
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("%w: zero divisor fraction", ErrDivisionByZero)
	}
	return reduce(
		new(big.Int).Mul(r.num, o.den),
		new(big.Int).Mul(r.den, o.num),
	), nil
}

// IsZero returns true iff the numerator is zero. Given canonical form, a zero
// numerator always has denominator one.
func (r Rational) IsZero() bool {
	return r.num == nil || r.num.Sign() == 0
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.num)
}

// Den returns a copy of the denominator.
func (r Rational) Den() *big.Int {
	if r.den == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.den)
}

// BigInt truncates the fraction to an integer, rounding toward zero. A zero
// denominator fails with [ErrDivisionByZero]; the canonical form invariant
// makes that unreachable for constructed values, but the zero value of
// Rational is not constructed.
func (r Rational) BigInt() (*big.Int, error) {
	if r.den == nil || r.den.Sign() == 0 {
		return nil, fmt.Errorf("%w: truncating a zero-denominator fraction", ErrDivisionByZero)
	}
	return new(big.Int).Quo(r.num, r.den), nil
}

// Equal returns true iff the canonical forms match.
func (r Rational) Equal(o Rational) bool {
	if r.IsZero() || o.IsZero() {
		return r.IsZero() == o.IsZero()
	}
	return r.num.Cmp(o.num) == 0 && r.den.Cmp(o.den) == 0
}

func (r Rational) String() string {
	return fmt.Sprintf("%s/%s", r.Num(), r.Den())
}
