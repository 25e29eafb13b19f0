// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package shares parses JSON share containers and decodes their entries into
// interpolation points.
package shares

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/shamir/interpolate"
	"github.com/ava-labs/shamir/utils/logging"
)

// Bases a share value may be encoded in
const (
	MinBase = 2
	MaxBase = 36

	keysField = "keys"
)

var (
	ErrNoThreshold          = errors.New("share container is missing its threshold")
	ErrNonPositiveThreshold = errors.New("threshold must be positive")
)

// Share is one encoded entry of a container. The value string holds the
// y-coordinate's digits in the given base.
type Share struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// Container is a parsed share container whose entries have not yet been
// decoded. The JSON layout is a "keys" object carrying the threshold next to
// one entry per share, keyed by the share's x-coordinate:
//
//	{"keys": {"n": 3, "k": 2}, "1": {"base": "16", "value": "1a"}, ...}
type Container struct {
	threshold int
	count     int
	entries   map[string]json.RawMessage
}

type containerKeys struct {
	N int `json:"n"`
	K int `json:"k"`
}

// Parse validates the container shape. A missing "keys" object or a
// non-positive threshold is fatal here; individual share entries are only
// inspected by Points, where a bad entry is skipped rather than failing the
// whole container.
func Parse(b []byte) (*Container, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal share container: %w", err)
	}

	rawKeys, ok := entries[keysField]
	if !ok {
		return nil, ErrNoThreshold
	}
	var keys containerKeys
	if err := json.Unmarshal(rawKeys, &keys); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoThreshold, err)
	}
	if keys.K <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveThreshold, keys.K)
	}

	delete(entries, keysField)
	return &Container{
		threshold: keys.K,
		count:     keys.N,
		entries:   entries,
	}, nil
}

// Threshold returns k, the number of shares needed for reconstruction.
func (c *Container) Threshold() int {
	return c.threshold
}

// Count returns n as declared by the container. It is informational; the
// number of decoded points is what matters.
func (c *Container) Count() int {
	return c.count
}

// Points decodes every share entry. Entries with a non-integer index, a base
// outside [MinBase, MaxBase], an empty value, undecodable digits, or an
// x-coordinate that already appeared are skipped with a warning. The returned
// points are sorted by ascending x.
func (c *Container) Points(log logging.Logger) []interpolate.Point {
	// Walk the entries in a fixed order so that skip diagnostics and
	// duplicate resolution don't depend on map iteration.
	indices := make([]string, 0, len(c.entries))
	for index := range c.entries {
		indices = append(indices, index)
	}
	slices.Sort(indices)

	seen := make(map[string]struct{}, len(indices))
	points := make([]interpolate.Point, 0, len(indices))
	for _, index := range indices {
		x, ok := new(big.Int).SetString(index, 10)
		if !ok {
			log.Warn("skipping share with non-integer index",
				zap.String("index", index),
			)
			continue
		}
		if _, ok := seen[x.String()]; ok {
			log.Warn("skipping share with duplicate x-coordinate",
				zap.String("index", index),
			)
			continue
		}

		y, err := decodeShare(c.entries[index])
		if err != nil {
			log.Warn("skipping undecodable share",
				zap.String("index", index),
				zap.Error(err),
			)
			continue
		}

		seen[x.String()] = struct{}{}
		points = append(points, interpolate.Point{X: x, Y: y})
	}

	slices.SortFunc(points, func(a, b interpolate.Point) bool {
		return a.X.Cmp(b.X) < 0
	})
	return points
}

func decodeShare(raw json.RawMessage) (*big.Int, error) {
	var share Share
	if err := json.Unmarshal(raw, &share); err != nil {
		return nil, err
	}

	base, err := strconv.Atoi(share.Base)
	if err != nil {
		return nil, fmt.Errorf("invalid base %q: %w", share.Base, err)
	}
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("base %d outside [%d, %d]", base, MinBase, MaxBase)
	}

	value := strings.TrimSpace(share.Value)
	if value == "" {
		return nil, errors.New("empty value")
	}
	y, ok := new(big.Int).SetString(value, base)
	if !ok {
		return nil, fmt.Errorf("value %q is not base-%d digits", share.Value, base)
	}
	return y, nil
}
