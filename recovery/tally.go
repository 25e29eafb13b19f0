// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package recovery

import "math/big"

// tally counts the votes cast for each candidate secret. Merging tallies is
// a plain counter sum, so per-worker tallies can be combined in any order.
type tally struct {
	votes map[string]*candidate
}

type candidate struct {
	secret *big.Int
	count  uint64
}

func newTally() *tally {
	return &tally{
		votes: make(map[string]*candidate),
	}
}

func (t *tally) add(secret *big.Int) {
	key := secret.String()
	c, ok := t.votes[key]
	if !ok {
		c = &candidate{secret: secret}
		t.votes[key] = c
	}
	c.count++
}

func (t *tally) merge(o *tally) {
	for key, oc := range o.votes {
		c, ok := t.votes[key]
		if !ok {
			t.votes[key] = oc
			continue
		}
		c.count += oc.count
	}
}

func (t *tally) len() int {
	return len(t.votes)
}

// winner returns the secret with the most votes, or nil if no votes were
// cast. Ties break toward the numerically smallest secret, which keeps the
// result independent of enumeration and completion order.
func (t *tally) winner() *big.Int {
	var best *candidate
	for _, c := range t.votes {
		switch {
		case best == nil,
			c.count > best.count,
			c.count == best.count && c.secret.Cmp(best.secret) < 0:
			best = c
		}
	}
	if best == nil {
		return nil
	}
	return best.secret
}
