// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

var errUnknownLevel = errors.New("unknown log level")

type Level zapcore.Level

// Levels are kept below zapcore's built-in range so that zap treats each of
// them as enabled whenever the configured threshold is at or below it.
const (
	Verbo Level = iota - 9
	Debug
	Trace
	Info
	Warn
	Error
	Fatal
	Off
)

const (
	verboStr = "VERBO"
	debugStr = "DEBUG"
	traceStr = "TRACE"
	infoStr  = "INFO"
	warnStr  = "WARN"
	errorStr = "ERROR"
	fatalStr = "FATAL"
	offStr   = "OFF"
)

// ToLevel is the inverse of Level.String.
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case verboStr:
		return Verbo, nil
	case debugStr:
		return Debug, nil
	case traceStr:
		return Trace, nil
	case infoStr:
		return Info, nil
	case warnStr:
		return Warn, nil
	case errorStr:
		return Error, nil
	case fatalStr:
		return Fatal, nil
	case offStr:
		return Off, nil
	default:
		return Off, fmt.Errorf("%w: %q", errUnknownLevel, l)
	}
}

func (l Level) String() string {
	switch l {
	case Verbo:
		return verboStr
	case Debug:
		return debugStr
	case Trace:
		return traceStr
	case Info:
		return infoStr
	case Warn:
		return warnStr
	case Error:
		return errorStr
	case Fatal:
		return fatalStr
	case Off:
		return offStr
	default:
		// "unknown" is more descriptive than the numeric representation that
		// zapcore would produce.
		return "UNKNO"
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var levelStr string
	if err := json.Unmarshal(b, &levelStr); err != nil {
		return err
	}
	level, err := ToLevel(levelStr)
	if err != nil {
		return err
	}
	*l = level
	return nil
}
