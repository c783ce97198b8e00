// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/movegenesis/database"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Iterator = (*iterator)(nil)
)

// Database tracks the amount of time each operation takes and how many bytes
// are read/written to the underlying database instance.
type Database struct {
	db      database.Database
	metrics *metrics
}

// New returns a new database with added metrics
func New(
	namespace string,
	registerer prometheus.Registerer,
	db database.Database,
) (*Database, error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &Database{
		db:      db,
		metrics: m,
	}, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	start := time.Now()
	exists, err := db.db.Has(key)
	db.metrics.observe(has, start, len(key))
	return exists, err
}

func (db *Database) Get(key []byte) ([]byte, error) {
	start := time.Now()
	value, err := db.db.Get(key)
	db.metrics.observe(get, start, len(key)+len(value))
	return value, err
}

func (db *Database) Put(key, value []byte) error {
	start := time.Now()
	err := db.db.Put(key, value)
	db.metrics.observe(put, start, len(key)+len(value))
	return err
}

func (db *Database) Delete(key []byte) error {
	start := time.Now()
	err := db.db.Delete(key)
	db.metrics.observe(del, start, len(key))
	return err
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithPrefix(nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	start := time.Now()
	it := &iterator{
		Iterator: db.db.NewIteratorWithPrefix(prefix),
		metrics:  db.metrics,
	}
	db.metrics.observe(newIterator, start, len(prefix))
	return it
}

func (db *Database) Close() error {
	start := time.Now()
	err := db.db.Close()
	db.metrics.observe(closeMethod, start, 0)
	return err
}

type iterator struct {
	database.Iterator
	metrics *metrics
}

func (it *iterator) Next() bool {
	start := time.Now()
	next := it.Iterator.Next()
	size := 0
	if next {
		size = len(it.Iterator.Key()) + len(it.Iterator.Value())
	}
	it.metrics.observe(iNext, start, size)
	return next
}

func (it *iterator) Error() error {
	start := time.Now()
	err := it.Iterator.Error()
	it.metrics.observe(iError, start, 0)
	return err
}

func (it *iterator) Key() []byte {
	start := time.Now()
	key := it.Iterator.Key()
	it.metrics.observe(iKey, start, 0)
	return key
}

func (it *iterator) Value() []byte {
	start := time.Now()
	value := it.Iterator.Value()
	it.metrics.observe(iValue, start, 0)
	return value
}

func (it *iterator) Release() {
	start := time.Now()
	it.Iterator.Release()
	it.metrics.observe(iRelease, start, 0)
}
