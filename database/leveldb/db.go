// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package leveldb

import (
	"errors"
	"slices"
	"sync/atomic"

	"github.com/syndtr/goleveldb/leveldb"
	levelerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"

	"github.com/ava-labs/movegenesis/database"
	"github.com/ava-labs/movegenesis/utils/logging"
	"github.com/ava-labs/movegenesis/utils/units"
)

const (
	// Name is the name of this database for database switches
	Name = "leveldb"

	// DefaultBlockCacheSize is the number of bytes to use for block caching in
	// leveldb.
	DefaultBlockCacheSize = 12 * opt.MiB

	// DefaultWriteBufferSize is the number of bytes to use for buffers in
	// leveldb.
	DefaultWriteBufferSize = 12 * opt.MiB

	// DefaultBitsPerKey is the number of bits to add to the bloom filter per
	// key.
	DefaultBitsPerKey = 10

	// DefaultMaxManifestFileSize is the default maximum size of a manifest
	// file.
	DefaultMaxManifestFileSize = 4 * units.MiB
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Iterator = (*iter)(nil)
)

// Database is a persistent key-value store. Apart from basic data storage
// functionality it also supports prefixed iteration.
type Database struct {
	*leveldb.DB
	log    logging.Logger
	closed atomic.Bool
}

// New returns a wrapped LevelDB object.
func New(file string, log logging.Logger) (*Database, error) {
	options := &opt.Options{
		BlockCacheCapacity:     DefaultBlockCacheSize,
		WriteBuffer:            DefaultWriteBufferSize,
		Filter:                 filter.NewBloomFilter(DefaultBitsPerKey),
		MaxManifestFileSize:    DefaultMaxManifestFileSize,
		OpenFilesCacheCapacity: 64,
	}

	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(file, options)
	var corrupted *levelerrors.ErrCorrupted
	if errors.As(err, &corrupted) {
		log.Warn("recovering corrupted database",
			zap.String("path", file),
			zap.Error(err),
		)
		db, err = leveldb.RecoverFile(file, options)
	}
	if err != nil {
		return nil, err
	}

	log.Info("opened database",
		zap.String("name", Name),
		zap.String("path", file),
	)
	return &Database{
		DB:  db,
		log: log,
	}, nil
}

// Has returns if the key is set in the database
func (db *Database) Has(key []byte) (bool, error) {
	has, err := db.DB.Has(key, nil)
	return has, updateError(err)
}

// Get returns the value the key maps to in the database
func (db *Database) Get(key []byte) ([]byte, error) {
	value, err := db.DB.Get(key, nil)
	return value, updateError(err)
}

// Put sets the value of the provided key to the provided value
func (db *Database) Put(key []byte, value []byte) error {
	return updateError(db.DB.Put(key, value, nil))
}

// Delete removes the key from the database
func (db *Database) Delete(key []byte) error {
	return updateError(db.DB.Delete(key, nil))
}

// NewIterator creates a lexicographically ordered iterator over the database
func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithPrefix(nil)
}

// NewIteratorWithPrefix creates a lexicographically ordered iterator over the
// database ignoring keys that do not start with the provided prefix
func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return &iter{
		db:       db,
		Iterator: db.DB.NewIterator(util.BytesPrefix(prefix), nil),
	}
}

func (db *Database) Close() error {
	db.closed.Store(true)
	return updateError(db.DB.Close())
}

// iter wraps a leveldb iterator so that the returned keys and values remain
// valid after the iterator advances.
type iter struct {
	db *Database
	iterator.Iterator

	key, val []byte
	err      error
}

func (it *iter) Next() bool {
	// Short-circuit and set an error if the underlying database has been closed.
	if it.db.closed.Load() {
		it.key = nil
		it.val = nil
		it.err = database.ErrClosed
		return false
	}

	hasNext := it.Iterator.Next()
	if hasNext {
		it.key = slices.Clone(it.Iterator.Key())
		it.val = slices.Clone(it.Iterator.Value())
	} else {
		it.key = nil
		it.val = nil
	}
	return hasNext
}

func (it *iter) Error() error {
	if it.err != nil {
		return it.err
	}
	return updateError(it.Iterator.Error())
}

func (it *iter) Key() []byte {
	return it.key
}

func (it *iter) Value() []byte {
	return it.val
}

func updateError(err error) error {
	switch {
	case errors.Is(err, leveldb.ErrClosed):
		return database.ErrClosed
	case errors.Is(err, leveldb.ErrNotFound):
		return database.ErrNotFound
	default:
		return err
	}
}
