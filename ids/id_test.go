// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDStringRoundTrip(t *testing.T) {
	require := require.New(t)

	id := ID{'g', 'e', 'n', 'e', 's', 'i', 's'}
	parsed, err := FromString(id.String())
	require.NoError(err)
	require.Equal(id, parsed)
}

func TestIDJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	id := GenerateTestID()
	jsonBytes, err := json.Marshal(id)
	require.NoError(err)

	var parsed ID
	require.NoError(json.Unmarshal(jsonBytes, &parsed))
	require.Equal(id, parsed)
}

func TestIDUnmarshalJSONNull(t *testing.T) {
	require := require.New(t)

	id := ID{1}
	require.NoError(id.UnmarshalJSON([]byte(nullStr)))
	require.Equal(ID{1}, id)
}

func TestIDUnmarshalJSONMissingQuotes(t *testing.T) {
	require := require.New(t)

	var id ID
	err := id.UnmarshalJSON([]byte("abc"))
	require.ErrorIs(err, errMissingQuotes)
}

func TestIDPrefixIsDeterministic(t *testing.T) {
	require := require.New(t)

	require.Equal(Empty.Prefix(1, 2), Empty.Prefix(1, 2))
	require.NotEqual(Empty.Prefix(1), Empty.Prefix(2))
}

func TestGenerateTestIDUnique(t *testing.T) {
	require.NotEqual(t, GenerateTestID(), GenerateTestID())
}

func TestShortIDStringRoundTrip(t *testing.T) {
	require := require.New(t)

	id := GenerateTestShortID()
	parsed, err := ShortFromString(id.String())
	require.NoError(err)
	require.Equal(id, parsed)

	var fromText ShortID
	require.NoError(fromText.UnmarshalText([]byte(id.String())))
	require.Equal(id, fromText)
}

func TestNodeIDFromPublicKey(t *testing.T) {
	require := require.New(t)

	nodeID := NodeIDFromPublicKey([]byte("validator-0"))
	require.NotEqual(EmptyNodeID, nodeID)
	require.Equal(nodeID, NodeIDFromPublicKey([]byte("validator-0")))

	parsed, err := NodeIDFromString(nodeID.String())
	require.NoError(err)
	require.Equal(nodeID, parsed)

	jsonBytes, err := json.Marshal(nodeID)
	require.NoError(err)

	var fromJSON NodeID
	require.NoError(json.Unmarshal(jsonBytes, &fromJSON))
	require.Equal(nodeID, fromJSON)
}

func TestNodeIDFromStringMissingPrefix(t *testing.T) {
	_, err := NodeIDFromString(GenerateTestShortID().String())
	require.Error(t, err)
}

func TestToIDLength(t *testing.T) {
	require := require.New(t)

	_, err := ToID(make([]byte, IDLen-1))
	require.ErrorIs(err, ErrInvalidIDLen)

	_, err = ToShortID(make([]byte, ShortIDLen+1))
	require.ErrorIs(err, ErrInvalidIDLen)

	shortID, err := ToShortID(make([]byte, ShortIDLen))
	require.NoError(err)
	require.Equal(ShortEmpty, shortID)
}
