// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package recovery

import (
	"errors"
	"fmt"
	"strings"
)

var errUnknownStrategy = errors.New("unknown reconstruction strategy")

// Strategy selects how a Reconstructor turns candidate shares into a secret.
type Strategy int

const (
	// MajorityVote solves every k-subset of the shares, skips the subsets
	// that fail, and returns the most frequently produced secret. It
	// tolerates corrupted shares as long as at least k clean shares remain.
	MajorityVote Strategy = iota

	// Direct solves once on the k shares with the smallest x-coordinates and
	// trusts the result. Any solver failure is fatal.
	Direct
)

// ToStrategy is the inverse of Strategy.String.
func ToStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "majority-vote", "majority":
		return MajorityVote, nil
	case "direct":
		return Direct, nil
	default:
		return MajorityVote, fmt.Errorf("%w: %q", errUnknownStrategy, s)
	}
}

func (s Strategy) String() string {
	switch s {
	case MajorityVote:
		return "majority-vote"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}
