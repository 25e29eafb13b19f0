// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package recovery

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTallyWinner(t *testing.T) {
	require := require.New(t)

	votes := newTally()
	require.Nil(votes.winner())

	votes.add(big.NewInt(7))
	votes.add(big.NewInt(3))
	votes.add(big.NewInt(7))
	require.Equal(int64(7), votes.winner().Int64())
	require.Equal(2, votes.len())
}

func TestTallyTieBreak(t *testing.T) {
	require := require.New(t)

	votes := newTally()
	votes.add(big.NewInt(9))
	votes.add(big.NewInt(-2))
	votes.add(big.NewInt(5))

	require.Equal(int64(-2), votes.winner().Int64())
}

func TestTallyMergeOrderIndependent(t *testing.T) {
	require := require.New(t)

	build := func(values ...int64) *tally {
		votes := newTally()
		for _, v := range values {
			votes.add(big.NewInt(v))
		}
		return votes
	}

	left := build(1, 1, 2)
	right := build(2, 2, 3)

	ab := build()
	ab.merge(left)
	ab.merge(right)

	ba := build()
	ba.merge(build(2, 2, 3))
	ba.merge(build(1, 1, 2))

	require.Equal(ab.winner().Int64(), ba.winner().Int64())
	require.Equal(int64(2), ab.winner().Int64())
	require.Equal(3, ab.len())
}
