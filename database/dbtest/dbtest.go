// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/database"
)

// Tests is a list of all database tests
var Tests = map[string]func(t *testing.T, db database.Database){
	"SimpleKeyValue":       TestSimpleKeyValue,
	"KeyEmptyValue":        TestKeyEmptyValue,
	"SimpleKeyValueClosed": TestSimpleKeyValueClosed,
	"Iterator":             TestIterator,
	"IteratorPrefix":       TestIteratorPrefix,
	"IteratorClosed":       TestIteratorClosed,
	"MemorySafety":         TestMemorySafetyDatabase,
	"Keys":                 TestKeys,
}

// TestSimpleKeyValue tests to make sure that simple Put + Get + Delete + Has
// calls return the expected values.
func TestSimpleKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Delete(key))

	has, err = db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
}

func TestKeyEmptyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	val := []byte(nil)

	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put(key, val))

	value, err := db.Get(key)
	require.NoError(err)
	require.Empty(value)
}

// TestSimpleKeyValueClosed tests to make sure that Put + Get + Delete + Has
// calls return the correct error when the database has been closed.
func TestSimpleKeyValueClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	require.NoError(db.Close())

	_, err := db.Has(key)
	require.ErrorIs(err, database.ErrClosed)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrClosed)

	err = db.Put(key, value)
	require.ErrorIs(err, database.ErrClosed)

	err = db.Delete(key)
	require.ErrorIs(err, database.ErrClosed)

	err = db.Close()
	require.ErrorIs(err, database.ErrClosed)
}

// TestIterator tests to make sure the database iterates over the database
// contents lexicographically.
func TestIterator(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	value1 := []byte("world1")

	key2 := []byte("hello2")
	value2 := []byte("world2")

	require.NoError(db.Put(key2, value2))
	require.NoError(db.Put(key1, value1))

	iterator := db.NewIterator()
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal(key1, iterator.Key())
	require.Equal(value1, iterator.Value())

	require.True(iterator.Next())
	require.Equal(key2, iterator.Key())
	require.Equal(value2, iterator.Value())

	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.NoError(iterator.Error())
}

// TestIteratorPrefix tests to make sure the iterator can be configured to skip
// keys missing the provided prefix.
func TestIteratorPrefix(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("hello"), []byte("world1")))
	require.NoError(db.Put([]byte("goodbye"), []byte("world2")))
	require.NoError(db.Put([]byte("joy"), []byte("world3")))

	iterator := db.NewIteratorWithPrefix([]byte("h"))
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal([]byte("hello"), iterator.Key())
	require.Equal([]byte("world1"), iterator.Value())

	require.False(iterator.Next())
	require.NoError(iterator.Error())
}

// TestIteratorClosed tests to make sure that an iterator that was created with
// a closed database will report a closed error correctly.
func TestIteratorClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("hello1"), []byte("world1")))
	require.NoError(db.Close())

	iterator := db.NewIterator()
	defer iterator.Release()

	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.ErrorIs(iterator.Error(), database.ErrClosed)
}

// TestMemorySafetyDatabase ensures it is safe to modify a key after passing it
// to Database.Put and Database.Get.
func TestMemorySafetyDatabase(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("1key")
	keyCopy := []byte("1key")
	value := []byte("value")
	key2 := []byte("2key")
	value2 := []byte("value2")

	// Put both K/V pairs in the database
	require.NoError(db.Put(key, value))
	require.NoError(db.Put(key2, value2))

	// Get the value for [key]
	gotVal, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, gotVal)

	// Modify [key]; make sure the value we got before hasn't changed
	key[0] = key2[0]
	gotVal2, err := db.Get(key)
	require.NoError(err)
	require.Equal(value2, gotVal2)
	require.Equal(value, gotVal)

	// Reset [key] to its original value and make sure it's correct
	key[0] = keyCopy[0]
	gotVal, err = db.Get(key)
	require.NoError(err)
	require.Equal(value, gotVal)
}

// TestKeys ensures prefixed keys are listed in ascending order.
func TestKeys(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("bundle/testnet"), []byte{1}))
	require.NoError(db.Put([]byte("bundle/mainnet"), []byte{2}))
	require.NoError(db.Put([]byte("other"), []byte{3}))

	keys, err := database.Keys(db, []byte("bundle/"))
	require.NoError(err)
	require.Equal(
		[][]byte{
			[]byte("bundle/mainnet"),
			[]byte("bundle/testnet"),
		},
		keys,
	)
}
