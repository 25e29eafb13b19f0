// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package app drives the batch reconstruction of share container files.
package app

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/shamir/config"
	"github.com/ava-labs/shamir/recovery"
	"github.com/ava-labs/shamir/shares"
	"github.com/ava-labs/shamir/utils/constants"
	"github.com/ava-labs/shamir/utils/logging"
)

type App struct {
	config        config.Config
	log           logging.Logger
	logFactory    logging.Factory
	reconstructor *recovery.Reconstructor
	registry      *prometheus.Registry
}

func New(c config.Config) (*App, error) {
	logFactory := logging.NewFactory(c.LoggingConfig)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("couldn't make logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	reconstructor, err := recovery.New(c.RecoveryConfig, log, constants.AppName, registry)
	if err != nil {
		logFactory.Close()
		return nil, err
	}

	return &App{
		config:        c,
		log:           log,
		logFactory:    logFactory,
		reconstructor: reconstructor,
		registry:      registry,
	}, nil
}

// Start processes each input file in order, printing every recovered secret
// to stdout. A failed file marks the run as failed but never stops the
// remaining files. The returned value is the process exit code.
func (a *App) Start(ctx context.Context) int {
	defer a.logFactory.Close()

	exitCode := 0
	for _, path := range a.config.InputFiles {
		secret, err := a.processFile(ctx, path)
		if err != nil {
			a.log.Error("reconstruction failed",
				zap.String("file", path),
				zap.Error(err),
			)
			exitCode = 1
			continue
		}

		a.log.Info("reconstructed secret",
			zap.String("file", path),
		)
		fmt.Println(secret)
	}
	return exitCode
}

func (a *App) processFile(ctx context.Context, path string) (*big.Int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read share container: %w", err)
	}

	container, err := shares.Parse(b)
	if err != nil {
		return nil, err
	}

	points := container.Points(a.log)
	a.log.Debug("decoded share container",
		zap.String("file", path),
		zap.Int("threshold", container.Threshold()),
		zap.Int("declaredShares", container.Count()),
		zap.Int("decodedShares", len(points)),
	)

	return a.reconstructor.Reconstruct(ctx, points, container.Threshold())
}
