// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package recovery reconstructs a threshold-shared secret from candidate
// shares.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/shamir/interpolate"
	"github.com/ava-labs/shamir/utils/combinations"
	"github.com/ava-labs/shamir/utils/logging"
)

var (
	ErrInsufficientShares  = errors.New("fewer valid shares than the threshold")
	ErrNoConsensus         = errors.New("no combination of shares produced a secret")
	ErrTooManyCombinations = errors.New("combination count exceeds the configured limit")
)

type Config struct {
	Strategy Strategy

	// NumWorkers bounds the majority-vote evaluation fan-out. Values <= 1
	// evaluate combinations serially. The strategy's result is independent of
	// the worker count.
	NumWorkers int

	// MaxCombinations caps C(n, k) under the majority-vote strategy.
	// Reconstruction of an input that would exceed the cap fails with
	// ErrTooManyCombinations before any combination is evaluated. Zero
	// disables the cap.
	MaxCombinations uint64
}

// Reconstructor recovers secrets from share sets according to its configured
// strategy. It is safe for concurrent use; each reconstruction is
// independent.
type Reconstructor struct {
	config  Config
	log     logging.Logger
	metrics *metrics
}

func New(
	config Config,
	log logging.Logger,
	namespace string,
	registerer prometheus.Registerer,
) (*Reconstructor, error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}
	return &Reconstructor{
		config:  config,
		log:     log,
		metrics: m,
	}, nil
}

// Reconstruct recovers the constant term of the polynomial shared by
// [points]. [threshold] is k, the number of points that determine the
// polynomial. Fewer than k points fails with ErrInsufficientShares.
func (r *Reconstructor) Reconstruct(
	ctx context.Context,
	points []interpolate.Point,
	threshold int,
) (*big.Int, error) {
	if threshold < 1 || len(points) < threshold {
		return nil, fmt.Errorf("%w: have %d, need %d",
			ErrInsufficientShares,
			len(points),
			threshold,
		)
	}

	switch r.config.Strategy {
	case Direct:
		return r.direct(points, threshold)
	default:
		return r.majorityVote(ctx, points, threshold)
	}
}

// direct trusts the shares: it solves a single system over the k points with
// the smallest x-coordinates and propagates any failure.
func (r *Reconstructor) direct(points []interpolate.Point, threshold int) (*big.Int, error) {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b interpolate.Point) bool {
		return a.X.Cmp(b.X) < 0
	})

	secret, err := r.solve(sorted[:threshold])
	if err != nil {
		return nil, err
	}
	r.metrics.secretsRecovered.Inc()
	return secret, nil
}

func (r *Reconstructor) majorityVote(
	ctx context.Context,
	points []interpolate.Point,
	threshold int,
) (*big.Int, error) {
	total := combinations.Count(len(points), threshold)
	if max := r.config.MaxCombinations; max != 0 &&
		total.Cmp(new(big.Int).SetUint64(max)) > 0 {
		return nil, fmt.Errorf("%w: C(%d, %d) = %s > %d",
			ErrTooManyCombinations,
			len(points),
			threshold,
			total,
			max,
		)
	}

	it, err := combinations.NewIterator(points, threshold)
	if err != nil {
		return nil, err
	}

	var votes *tally
	if r.config.NumWorkers <= 1 {
		votes, err = r.voteSerially(ctx, it)
	} else {
		votes, err = r.voteConcurrently(ctx, it)
	}
	if err != nil {
		return nil, err
	}

	r.metrics.candidateSecrets.Set(float64(votes.len()))
	winner := votes.winner()
	if winner == nil {
		return nil, ErrNoConsensus
	}
	r.metrics.secretsRecovered.Inc()
	return winner, nil
}

func (r *Reconstructor) voteSerially(
	ctx context.Context,
	it *combinations.Iterator[interpolate.Point],
) (*tally, error) {
	votes := newTally()
	for it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.vote(votes, it.Combination())
	}
	return votes, nil
}

func (r *Reconstructor) voteConcurrently(
	ctx context.Context,
	it *combinations.Iterator[interpolate.Point],
) (*tally, error) {
	var (
		numWorkers = r.config.NumWorkers
		subsets    = make(chan []interpolate.Point, numWorkers)
		tallies    = make([]*tally, numWorkers)
	)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		votes := newTally()
		tallies[i] = votes
		eg.Go(func() error {
			for subset := range subsets {
				r.vote(votes, subset)
			}
			return nil
		})
	}

	var produceErr error
	for it.Next() {
		select {
		case subsets <- it.Combination():
		case <-egCtx.Done():
			produceErr = egCtx.Err()
		}
		if produceErr != nil {
			break
		}
	}
	close(subsets)

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if produceErr != nil {
		return nil, produceErr
	}

	// Vote counting is associative, so the merge order doesn't matter.
	votes := newTally()
	for _, workerVotes := range tallies {
		votes.merge(workerVotes)
	}
	return votes, nil
}

// vote solves one combination and records the result. Failed combinations
// only cost a vote; a corrupted share shouldn't abort the reconstruction.
func (r *Reconstructor) vote(votes *tally, subset []interpolate.Point) {
	secret, err := r.solve(subset)
	if err != nil {
		r.log.Debug("skipping combination",
			zap.Error(err),
		)
		return
	}
	votes.add(secret)
}

func (r *Reconstructor) solve(subset []interpolate.Point) (*big.Int, error) {
	start := time.Now()
	secret, err := interpolate.Solve(subset)
	r.metrics.solveDuration.Observe(float64(time.Since(start)))
	r.metrics.combinationsEvaluated.Inc()
	if err != nil {
		r.metrics.combinationsFailed.Inc()
	}
	return secret, err
}
