// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bytecode

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/utils/hashing"
	"github.com/ava-labs/movegenesis/utils/wrappers"
)

func withChecksum(b []byte) []byte {
	return append(b, hashing.Checksum(b, checksumLen)...)
}

func TestSerializeLayout(t *testing.T) {
	require := require.New(t)

	m, err := New("coin", []byte{0x01, 0x02})
	require.NoError(err)

	b, err := m.Serialize()
	require.NoError(err)
	require.Equal(
		withChecksum([]byte{
			// magic:
			0xa1, 0x1c, 0xeb, 0x0b,
			// version:
			0x00, 0x00, 0x00, 0x06,
			// name:
			0x00, 0x04, 'c', 'o', 'i', 'n',
			// body:
			0x00, 0x00, 0x00, 0x02, 0x01, 0x02,
		}),
		b,
	)
	require.Len(b, m.Size())

	parsed, err := Deserialize(b)
	require.NoError(err)
	require.True(m.Equal(parsed))
	require.Equal("coin", parsed.Name())
	require.Equal(CurrentVersion, parsed.Version())
	require.Equal([]byte{0x01, 0x02}, parsed.Body())
}

func TestDeserializeDoesNotAlias(t *testing.T) {
	require := require.New(t)

	m, err := New("coin", []byte{0x01})
	require.NoError(err)
	b, err := m.Serialize()
	require.NoError(err)

	parsed, err := Deserialize(b)
	require.NoError(err)
	b[len(b)-checksumLen-1] = 0xff
	require.Equal([]byte{0x01}, parsed.Body())
}

func TestNewCopiesBody(t *testing.T) {
	require := require.New(t)

	body := []byte{0x01}
	m, err := New("coin", body)
	require.NoError(err)
	body[0] = 0xff
	require.Equal([]byte{0x01}, m.Body())

	m.Body()[0] = 0xff
	require.Equal([]byte{0x01}, m.Body())
}

func TestNewErrors(t *testing.T) {
	tests := map[string]struct {
		name        string
		body        []byte
		expectedErr error
	}{
		"empty name": {
			name:        "",
			expectedErr: errEmptyName,
		},
		"long name": {
			name:        strings.Repeat("a", wrappers.MaxStringLen+1),
			expectedErr: errNameTooLong,
		},
		"large body": {
			name:        "big",
			body:        make([]byte, MaxBodySize+1),
			expectedErr: errBodyTooLong,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := New(test.name, test.body)
			require.ErrorIs(t, err, test.expectedErr)
			require.Nil(t, m)
		})
	}
}

func TestSerializeZeroValue(t *testing.T) {
	_, err := (&CompiledModule{}).Serialize()
	require.ErrorIs(t, err, errEmptyName)
}

func TestDeserializeErrors(t *testing.T) {
	valid, err := New("coin", []byte{0x01})
	require.NoError(t, err)
	validBytes, err := valid.Serialize()
	require.NoError(t, err)
	flipped := slices.Clone(validBytes)
	flipped[len(flipped)-checksumLen-1] ^= 0x01

	tests := map[string]struct {
		bytes       []byte
		expectedErr error
	}{
		"empty": {
			bytes:       nil,
			expectedErr: wrappers.ErrInsufficientLength,
		},
		"bad magic": {
			bytes:       append([]byte{0x00}, validBytes[1:]...),
			expectedErr: ErrBadMagic,
		},
		"base64 text": {
			bytes:       []byte("oRzrCwAAAAYABGNvaW4AAAABAQ=="),
			expectedErr: ErrBadMagic,
		},
		"truncated": {
			bytes:       validBytes[:len(validBytes)-1],
			expectedErr: wrappers.ErrInsufficientLength,
		},
		"trailing bytes": {
			bytes:       append(validBytes, 0x00),
			expectedErr: ErrTrailingBytes,
		},
		"flipped body byte": {
			bytes:       flipped,
			expectedErr: ErrBadChecksum,
		},
		"old version": {
			bytes: withChecksum([]byte{
				0xa1, 0x1c, 0xeb, 0x0b,
				0x00, 0x00, 0x00, 0x04,
				0x00, 0x01, 'a',
				0x00, 0x00, 0x00, 0x00,
			}),
			expectedErr: ErrUnsupportedVersion,
		},
		"empty name": {
			bytes: withChecksum([]byte{
				0xa1, 0x1c, 0xeb, 0x0b,
				0x00, 0x00, 0x00, 0x06,
				0x00, 0x00,
				0x00, 0x00, 0x00, 0x00,
			}),
			expectedErr: errEmptyName,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Deserialize(test.bytes)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestDeserializeMinVersion(t *testing.T) {
	require := require.New(t)

	m, err := Deserialize(withChecksum([]byte{
		0xa1, 0x1c, 0xeb, 0x0b,
		0x00, 0x00, 0x00, 0x05,
		0x00, 0x01, 'a',
		0x00, 0x00, 0x00, 0x00,
	}))
	require.NoError(err)
	require.Equal(MinVersion, m.Version())
	require.Empty(m.Body())
}

func TestModuleGroupEqual(t *testing.T) {
	require := require.New(t)

	a, err := New("a", []byte{1})
	require.NoError(err)
	b, err := New("b", []byte{2})
	require.NoError(err)
	aCopy, err := New("a", []byte{1})
	require.NoError(err)

	require.True(ModuleGroup{a, b}.Equal(ModuleGroup{aCopy, b}))
	require.False(ModuleGroup{a, b}.Equal(ModuleGroup{b, a}))
	require.False(ModuleGroup{a}.Equal(ModuleGroup{a, b}))
	require.True(ModuleGroup{}.Equal(nil))
	require.Equal([]string{"a", "b"}, ModuleGroup{a, b}.Names())
	require.Equal(a.Size()+b.Size(), ModuleGroup{a, b}.Size())

	require.True(EqualGroups(
		[]ModuleGroup{{a}, {b}},
		[]ModuleGroup{{aCopy}, {b}},
	))
	require.False(EqualGroups(
		[]ModuleGroup{{a}, {b}},
		[]ModuleGroup{{b}, {a}},
	))
}
