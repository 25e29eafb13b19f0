// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package combinations enumerates the k-element subsets of a slice.
package combinations

import (
	"errors"
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

var ErrInvalidSubsetSize = errors.New("subset size must be in [1, len(items)]")

// Iterator yields every k-element subset of a slice, one per Next call, in
// lexicographic order of the index tuples. Elements inside a subset keep the
// relative order they have in the source slice.
type Iterator[T any] struct {
	items   []T
	gen     *combin.CombinationGenerator
	indices []int
}

// NewIterator returns an iterator over the C(len(items), k) subsets of
// [items]. The iterator reads [items] but never writes it.
func NewIterator[T any](items []T, k int) (*Iterator[T], error) {
	if k < 1 || k > len(items) {
		return nil, ErrInvalidSubsetSize
	}
	return &Iterator[T]{
		items:   items,
		gen:     combin.NewCombinationGenerator(len(items), k),
		indices: make([]int, k),
	}, nil
}

// Next advances to the next subset. It returns false once the enumeration is
// exhausted.
func (it *Iterator[T]) Next() bool {
	if !it.gen.Next() {
		return false
	}
	it.gen.Combination(it.indices)
	return true
}

// Combination returns the current subset as a fresh slice. It is only valid
// after a true Next.
func (it *Iterator[T]) Combination() []T {
	subset := make([]T, len(it.indices))
	for i, index := range it.indices {
		subset[i] = it.items[index]
	}
	return subset
}

// Count returns C(n, k) without overflow.
func Count(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
