// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linearcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/codec"
	"github.com/ava-labs/movegenesis/utils/wrappers"
)

type inner struct {
	Bytes []byte `serialize:"true"`
	Skip  int
}

type kitchenSink struct {
	B     bool      `serialize:"true"`
	U8    uint8     `serialize:"true"`
	I8    int8      `serialize:"true"`
	U16   uint16    `serialize:"true"`
	I16   int16     `serialize:"true"`
	U32   uint32    `serialize:"true"`
	I32   int32     `serialize:"true"`
	U64   uint64    `serialize:"true"`
	I64   int64     `serialize:"true"`
	Str   string    `serialize:"true"`
	Arr   [4]byte   `serialize:"true"`
	Inner inner     `serialize:"true"`
	Ptr   *inner    `serialize:"true"`
	Nest  [][]byte  `serialize:"true"`
	Strs  []string  `serialize:"true" len:"2"`
	Slice []inner   `serialize:"true"`
	Empty []uint32  `serialize:"true"`
	Arr2  [2]uint16 `serialize:"true"`
}

func marshal(t *testing.T, c codec.Codec, value interface{}) []byte {
	p := wrappers.Packer{MaxSize: 1 << 20}
	require.NoError(t, c.MarshalInto(value, &p))
	return p.Bytes
}

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	c := NewDefault()
	in := kitchenSink{
		B:     true,
		U8:    0xff,
		I8:    -1,
		U16:   0xbeef,
		I16:   -300,
		U32:   0xa11ceb0b,
		I32:   -70000,
		U64:   1 << 40,
		I64:   -(1 << 40),
		Str:   "framework",
		Arr:   [4]byte{0xa1, 0x1c, 0xeb, 0x0b},
		Inner: inner{Bytes: []byte{1, 2, 3}},
		Ptr:   &inner{Bytes: []byte{4}},
		Nest:  [][]byte{{5}, {6, 7}},
		Strs:  []string{"a", "b"},
		Slice: []inner{{Bytes: []byte{8}}},
		Arr2:  [2]uint16{9, 10},
	}

	bytes := marshal(t, c, in)
	size, err := c.Size(in)
	require.NoError(err)
	require.Len(bytes, size)

	var out kitchenSink
	require.NoError(c.Unmarshal(bytes, &out))
	require.Equal(in, out)
}

func TestUnserializedFieldIgnored(t *testing.T) {
	require := require.New(t)

	c := NewDefault()
	bytes := marshal(t, c, inner{Bytes: []byte{1}, Skip: 7})
	require.Equal([]byte{0x00, 0x00, 0x00, 0x01, 0x01}, bytes)

	var out inner
	require.NoError(c.Unmarshal(bytes, &out))
	require.Zero(out.Skip)
}

func TestUnmarshalDoesNotAliasInput(t *testing.T) {
	require := require.New(t)

	c := NewDefault()
	bytes := marshal(t, c, inner{Bytes: []byte{1, 2}})

	var out inner
	require.NoError(c.Unmarshal(bytes, &out))
	bytes[len(bytes)-1] = 0xff
	require.Equal([]byte{1, 2}, out.Bytes)
}

func TestUnmarshalExtraSpace(t *testing.T) {
	c := NewDefault()
	bytes := append(marshal(t, c, inner{}), 0x00)

	var out inner
	err := c.Unmarshal(bytes, &out)
	require.ErrorIs(t, err, codec.ErrExtraSpace)
}

func TestUnmarshalTruncated(t *testing.T) {
	c := NewDefault()
	bytes := marshal(t, c, inner{Bytes: []byte{1, 2, 3}})

	var out inner
	err := c.Unmarshal(bytes[:len(bytes)-1], &out)
	require.ErrorIs(t, err, wrappers.ErrInsufficientLength)
}

func TestUnmarshalSliceLongerThanInput(t *testing.T) {
	type nested struct {
		Groups [][][]byte `serialize:"true"`
	}
	type structs struct {
		Inners []inner `serialize:"true"`
	}
	type empties struct {
		Values []struct{} `serialize:"true"`
	}

	c := NewDefault()
	tests := map[string]struct {
		bytes       []byte
		out         interface{}
		expectedErr error
	}{
		"nested slices": {
			bytes:       []byte{0x7f, 0xff, 0xff, 0xff},
			out:         &nested{},
			expectedErr: wrappers.ErrInsufficientLength,
		},
		"structs": {
			bytes:       []byte{0x7f, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00},
			out:         &structs{},
			expectedErr: wrappers.ErrInsufficientLength,
		},
		"one element short": {
			bytes:       []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00},
			out:         &structs{},
			expectedErr: wrappers.ErrInsufficientLength,
		},
		"zero sized elements": {
			bytes:       []byte{0x00, 0x00, 0x00, 0x03},
			out:         &empties{},
			expectedErr: nil,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := c.Unmarshal(test.bytes, test.out)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestSliceLenTag(t *testing.T) {
	require := require.New(t)

	c := NewDefault()
	p := wrappers.Packer{MaxSize: 1024}
	err := c.MarshalInto(kitchenSink{Strs: []string{"a", "b", "c"}}, &p)
	require.ErrorIs(err, codec.ErrMaxSliceLenExceeded)

	_, err = c.Size(kitchenSink{Strs: []string{"a", "b", "c"}})
	require.ErrorIs(err, codec.ErrMaxSliceLenExceeded)
}

func TestMaxSliceLen(t *testing.T) {
	require := require.New(t)

	c := New([]string{"serialize"}, 1)
	p := wrappers.Packer{MaxSize: 1024}
	err := c.MarshalInto(inner{Bytes: []byte{1, 2}}, &p)
	require.ErrorIs(err, codec.ErrMaxSliceLenExceeded)

	err = c.Unmarshal([]byte{0x00, 0x00, 0x00, 0x02, 0x01, 0x02}, &inner{})
	require.ErrorIs(err, codec.ErrMaxSliceLenExceeded)
}

func TestUnsupportedType(t *testing.T) {
	type withMap struct {
		M map[string]string `serialize:"true"`
	}

	c := NewDefault()
	p := wrappers.Packer{MaxSize: 1024}
	err := c.MarshalInto(withMap{}, &p)
	require.ErrorIs(t, err, codec.ErrUnsupportedType)
}

func TestUnexportedField(t *testing.T) {
	type withUnexported struct {
		hidden uint8 `serialize:"true"`
	}

	c := NewDefault()
	p := wrappers.Packer{MaxSize: 1024}
	err := c.MarshalInto(withUnexported{hidden: 1}, &p)
	require.ErrorIs(t, err, codec.ErrUnexportedField)
}

func TestMarshalNilPointer(t *testing.T) {
	c := NewDefault()
	p := wrappers.Packer{MaxSize: 1024}
	err := c.MarshalInto(kitchenSink{}, &p)
	require.ErrorIs(t, err, codec.ErrMarshalNil)
}
