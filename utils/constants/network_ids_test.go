// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworkName(t *testing.T) {
	tests := []struct {
		id   uint32
		name string
	}{
		{id: MainnetID, name: MainnetName},
		{id: TestnetID, name: TestnetName},
		{id: LocalID, name: LocalName},
		{id: 4242, name: "network-4242"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.name, NetworkName(test.id))
		})
	}
}

func TestNetworkID(t *testing.T) {
	tests := []struct {
		name        string
		id          uint32
		expectedErr error
	}{
		{name: MainnetName, id: MainnetID},
		{name: "TESTNET", id: TestnetID},
		{name: "network-4242", id: 4242},
		{name: "4242", id: 4242},
		{name: "network-", expectedErr: ErrParseNetworkName},
		{name: "unknown", expectedErr: ErrParseNetworkName},
		{name: "network-9999999999", expectedErr: ErrParseNetworkName},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			id, err := NetworkID(test.name)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.id, id)
		})
	}
}
