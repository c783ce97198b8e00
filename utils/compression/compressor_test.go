// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/utils/units"
)

const maxTestSize = 64 * units.KiB

func TestCompressDecompress(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd} {
		t.Run(typ.String(), func(t *testing.T) {
			require := require.New(t)

			compressor, err := New(typ, maxTestSize)
			require.NoError(err)

			data := bytes.Repeat([]byte{0xa1, 0x1c, 0xeb, 0x0b}, 1024)
			compressed, err := compressor.Compress(data)
			require.NoError(err)

			decompressed, err := compressor.Decompress(compressed)
			require.NoError(err)
			require.Equal(data, decompressed)
		})
	}
}

func TestZstdSizeLimits(t *testing.T) {
	require := require.New(t)

	compressor := NewZstdCompressor(16)
	_, err := compressor.Compress(make([]byte, 17))
	require.ErrorIs(err, ErrMsgTooLarge)

	large := NewZstdCompressor(1024)
	compressed, err := large.Compress(make([]byte, 1024))
	require.NoError(err)

	_, err = compressor.Decompress(compressed)
	require.ErrorIs(err, ErrDecompressedMsgTooLarge)
}

func TestZstdDecompressGarbage(t *testing.T) {
	_, err := NewZstdCompressor(maxTestSize).Decompress([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestTypeFromString(t *testing.T) {
	require := require.New(t)

	typ, err := TypeFromString("ZSTD")
	require.NoError(err)
	require.Equal(TypeZstd, typ)

	_, err = TypeFromString("gzip")
	require.ErrorIs(err, errUnknownType)

	_, err = New(Type(0), maxTestSize)
	require.ErrorIs(err, errUnknownType)
}
