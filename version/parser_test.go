// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("v1.2.3")
	require.NoError(t, err)
	require.Equal(t, &Semantic{Major: 1, Minor: 2, Patch: 3}, v)

	tests := []struct {
		version     string
		expectedErr error
	}{
		{
			version:     "",
			expectedErr: errMissingVersionPrefix,
		},
		{
			version:     "1.2.3",
			expectedErr: errMissingVersionPrefix,
		},
		{
			version:     "v1.2",
			expectedErr: errMissingVersions,
		},
		{
			version:     "vz.0.0",
			expectedErr: strconv.ErrSyntax,
		},
		{
			version:     "v1.2.z",
			expectedErr: strconv.ErrSyntax,
		},
	}
	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			_, err := Parse(test.version)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestParseApplication(t *testing.T) {
	require := require.New(t)

	v, err := ParseApplication(Current.String())
	require.NoError(err)
	require.Equal(Current, v)

	_, err = ParseApplication("avalanchego/1.2.3")
	require.ErrorIs(err, errMissingApplicationPrefix)

	_, err = ParseApplication("movegenesis/1.2")
	require.ErrorIs(err, errMissingVersions)
}
