// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package recovery

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/shamir/utils/metric"
	"github.com/ava-labs/shamir/utils/wrappers"
)

type metrics struct {
	combinationsEvaluated,
	combinationsFailed,
	secretsRecovered prometheus.Counter
	candidateSecrets prometheus.Gauge
	solveDuration    prometheus.Histogram
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		combinationsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combinations_evaluated",
			Help:      "Number of share combinations handed to the solver",
		}),
		combinationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combinations_failed",
			Help:      "Number of share combinations the solver rejected",
		}),
		secretsRecovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "secrets_recovered",
			Help:      "Number of successful reconstructions",
		}),
		candidateSecrets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "candidate_secrets",
			Help:      "Number of distinct secrets voted for during the last majority-vote reconstruction",
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration",
			Help:      "Latency of solving one combination in nanoseconds",
			Buckets:   metric.NanosecondsBuckets,
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.combinationsEvaluated),
		registerer.Register(m.combinationsFailed),
		registerer.Register(m.secretsRecovered),
		registerer.Register(m.candidateSecrets),
		registerer.Register(m.solveDuration),
	)
	return m, errs.Err
}
