// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/shamir/recovery"
	"github.com/ava-labs/shamir/utils/constants"
	"github.com/ava-labs/shamir/utils/logging"
)

const (
	VersionKey         = "version"
	StrategyKey        = "strategy"
	NumWorkersKey      = "workers"
	MaxCombinationsKey = "max-combinations"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFormatKey       = "log-format"
	LogDirKey          = "log-dir"
)

var (
	errNoInputFiles = errors.New("no share container files given")

	homeDir       = os.ExpandEnv("$HOME")
	defaultLogDir = filepath.Join(homeDir, "."+constants.AppName, "logs")
)

// Config is the result of parsing the CLI.
type Config struct {
	// If true, print the version and quit without reconstructing anything
	Version bool

	// Share container files to process, in order
	InputFiles []string

	LoggingConfig  logging.Config
	RecoveryConfig recovery.Config
}

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(constants.AppName, flag.ContinueOnError)

	fs.Bool(VersionKey, false, "If true, print version and quit")
	fs.String(StrategyKey, recovery.MajorityVote.String(), "Reconstruction strategy. Should be one of {majority-vote, direct}")
	fs.Int(NumWorkersKey, runtime.NumCPU(), "Number of goroutines evaluating share combinations under the majority-vote strategy")
	fs.Uint64(MaxCombinationsKey, 0, "Fail inputs whose share combination count exceeds this limit. 0 disables the limit")
	fs.String(LogLevelKey, logging.Debug.String(), "The log level written to the log file. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, logging.Info.String(), "The log level displayed on the terminal. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", `The structure of displayed logs. Defaults to "auto" which formats terminal-like logs when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}`)
	fs.String(LogDirKey, defaultLogDir, "Logging directory")

	return fs
}

// parseViper returns the viper environment from parsing [args], plus the
// positional arguments that remain.
func parseViper(args []string) (*viper.Viper, []string, error) {
	v := viper.New()

	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	fs.AddGoFlagSet(buildFlagSet())
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, err
	}
	return v, fs.Args(), nil
}

// GetConfig parses [args], normally os.Args[1:].
func GetConfig(args []string) (Config, error) {
	v, inputFiles, err := parseViper(args)
	if err != nil {
		return Config{}, err
	}
	return getConfig(v, inputFiles)
}

func getConfig(v *viper.Viper, inputFiles []string) (Config, error) {
	config := Config{
		Version:    v.GetBool(VersionKey),
		InputFiles: inputFiles,
	}
	if config.Version {
		return config, nil
	}
	if len(inputFiles) == 0 {
		return Config{}, errNoInputFiles
	}

	strategy, err := recovery.ToStrategy(v.GetString(StrategyKey))
	if err != nil {
		return Config{}, err
	}
	config.RecoveryConfig = recovery.Config{
		Strategy:        strategy,
		NumWorkers:      v.GetInt(NumWorkersKey),
		MaxCombinations: v.GetUint64(MaxCombinationsKey),
	}

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %s: %w", LogLevelKey, err)
	}
	displayLevel, err := logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %s: %w", LogDisplayLevelKey, err)
	}
	logFormat, err := logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return Config{}, err
	}
	config.LoggingConfig = logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   8, // megabytes
			MaxFiles:  7,
			Directory: v.GetString(LogDirKey),
		},
		LogLevel:     logLevel,
		DisplayLevel: displayLevel,
		LogFormat:    logFormat,
	}

	return config, nil
}
