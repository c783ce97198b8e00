// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingMarshalJSON(t *testing.T) {
	require := require.New(t)

	enc := CB58
	jsonBytes, err := enc.MarshalJSON()
	require.NoError(err)
	require.Equal(`"cb58"`, string(jsonBytes))

	var parsed Encoding
	require.NoError(json.Unmarshal([]byte(`"HEX"`), &parsed))
	require.Equal(Hex, parsed)

	err = parsed.UnmarshalJSON([]byte(`"base64"`))
	require.ErrorIs(err, errInvalidEncoding)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		encoding Encoding
		bytes    []byte
	}{
		{encoding: Hex, bytes: []byte{0x00, 0x01, 0xfe}},
		{encoding: HexNC, bytes: []byte{0xa1, 0x1c, 0xeb, 0x0b}},
		{encoding: CB58, bytes: []byte("validator public key")},
	}
	for _, test := range tests {
		t.Run(test.encoding.String(), func(t *testing.T) {
			require := require.New(t)

			str, err := Encode(test.encoding, test.bytes)
			require.NoError(err)

			decoded, err := Decode(test.encoding, str)
			require.NoError(err)
			require.Equal(test.bytes, decoded)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]struct {
		encoding    Encoding
		str         string
		expectedErr error
	}{
		"missing hex prefix": {
			encoding:    Hex,
			str:         "abcd",
			expectedErr: errMissingHexPrefix,
		},
		"missing checksum": {
			encoding:    Hex,
			str:         "0x0102",
			expectedErr: errMissingChecksum,
		},
		"bad checksum": {
			encoding:    Hex,
			str:         "0x0102030405",
			expectedErr: errBadChecksum,
		},
		"invalid encoding": {
			encoding:    Encoding(42),
			str:         "0x00",
			expectedErr: errInvalidEncoding,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(test.encoding, test.str)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	require := require.New(t)

	decoded, err := Decode(CB58, "")
	require.NoError(err)
	require.Nil(decoded)
}
