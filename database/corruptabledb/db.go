// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package corruptabledb

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ava-labs/movegenesis/database"
)

var _ database.Database = (*Database)(nil)

// Database is a wrapper around a database that prevents any future calls once
// an unexpected error occurred.
type Database struct {
	database.Database

	// set if there was previously an error other than "not found" or "closed"
	// while performing a db operation.
	corrupted atomic.Bool
	// the first unexpected error, reported by every later call
	initialErr atomic.Value
}

func New(db database.Database) *Database {
	return &Database{Database: db}
}

// Has returns if the key is set in the database
func (db *Database) Has(key []byte) (bool, error) {
	if err := db.corruptionErr(); err != nil {
		return false, err
	}
	has, err := db.Database.Has(key)
	return has, db.handleError(err)
}

// Get returns the value the key maps to in the database
func (db *Database) Get(key []byte) ([]byte, error) {
	if err := db.corruptionErr(); err != nil {
		return nil, err
	}
	value, err := db.Database.Get(key)
	return value, db.handleError(err)
}

// Put sets the value of the provided key to the provided value
func (db *Database) Put(key []byte, value []byte) error {
	if err := db.corruptionErr(); err != nil {
		return err
	}
	return db.handleError(db.Database.Put(key, value))
}

// Delete removes the key from the database
func (db *Database) Delete(key []byte) error {
	if err := db.corruptionErr(); err != nil {
		return err
	}
	return db.handleError(db.Database.Delete(key))
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithPrefix(nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	if err := db.corruptionErr(); err != nil {
		return &database.IteratorError{
			Err: err,
		}
	}
	return &iterator{
		Iterator: db.Database.NewIteratorWithPrefix(prefix),
		db:       db,
	}
}

func (db *Database) Close() error {
	return db.handleError(db.Database.Close())
}

func (db *Database) corruptionErr() error {
	if !db.corrupted.Load() {
		return nil
	}
	initialErr, _ := db.initialErr.Load().(error)
	return fmt.Errorf("%w: %w", database.ErrAvoidCorruption, initialErr)
}

func (db *Database) handleError(err error) error {
	switch {
	case err == nil, errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrClosed):
	// If we get an error other than "not found" or "closed", disallow future
	// database operations to avoid possible corruption
	default:
		if db.corrupted.CompareAndSwap(false, true) {
			db.initialErr.Store(err)
		}
	}
	return err
}

type iterator struct {
	database.Iterator
	db *Database
}

func (it *iterator) Error() error {
	return it.db.handleError(it.Iterator.Error())
}
