// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prefixdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/database"
	"github.com/ava-labs/movegenesis/database/dbtest"
	"github.com/ava-labs/movegenesis/database/memdb"
)

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			db := memdb.New()
			test(t, New([]byte("hello"), db))
			test(t, New([]byte("world"), db))
			test(t, New([]byte("wor"), New([]byte("ld"), db)))
			test(t, New([]byte("ld"), New([]byte("wor"), db)))
		})
	}
}

func TestPrefixIsolation(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	a := New([]byte("a"), db)
	b := New([]byte("b"), db)

	require.NoError(a.Put([]byte("key"), []byte("a")))
	require.NoError(b.Put([]byte("key"), []byte("b")))

	value, err := a.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("a"), value)

	value, err = b.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("b"), value)

	value, err = db.Get(PrefixKey(MakePrefix([]byte("a")), []byte("key")))
	require.NoError(err)
	require.Equal([]byte("a"), value)

	keys, err := database.Keys(a, nil)
	require.NoError(err)
	require.Equal([][]byte{[]byte("key")}, keys)
}

func TestCloseLeavesUnderlyingOpen(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	prefixed := New([]byte("bundle"), db)
	require.NoError(prefixed.Close())

	_, err := prefixed.Get([]byte("key"))
	require.ErrorIs(err, database.ErrClosed)

	require.NoError(db.Put([]byte("key"), []byte("value")))
}
