// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelStringRoundTrip(t *testing.T) {
	require := require.New(t)

	levels := []Level{Verbo, Debug, Trace, Info, Warn, Error, Fatal, Off}
	for _, level := range levels {
		parsed, err := ToLevel(level.String())
		require.NoError(err)
		require.Equal(level, parsed)
	}
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("sometimes")
	require.ErrorIs(t, err, errUnknownLevel)
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Warn)
	require.NoError(err)
	require.JSONEq(`"WARN"`, string(b))

	var level Level
	require.NoError(json.Unmarshal([]byte(`"debug"`), &level))
	require.Equal(Debug, level)

	require.Error(json.Unmarshal([]byte(`"loud"`), &level))
}
