// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/movegenesis/database"
	"github.com/ava-labs/movegenesis/database/corruptabledb"
	"github.com/ava-labs/movegenesis/database/leveldb"
	"github.com/ava-labs/movegenesis/database/memdb"
	"github.com/ava-labs/movegenesis/database/meterdb"
	"github.com/ava-labs/movegenesis/utils/logging"
)

var ErrUnknownDatabase = errors.New("unknown database type")

type DatabaseConfig struct {
	// Path to database
	Path string `json:"path"`

	// Name of the database type to use
	Name string `json:"name"`
}

// NewDatabase creates a new database instance based on the provided
// configuration. It supports LevelDB and MemDB as database types. It also
// wraps the database with a corruptable DB and a meter DB registered in
// [registerer] under [namespace].
func NewDatabase(
	dbConfig DatabaseConfig,
	namespace string,
	registerer prometheus.Registerer,
	log logging.Logger,
) (database.Database, error) {
	var db database.Database
	switch dbConfig.Name {
	case leveldb.Name:
		levelDB, err := leveldb.New(dbConfig.Path, log)
		if err != nil {
			return nil, fmt.Errorf("couldn't create %s at %s: %w", leveldb.Name, dbConfig.Path, err)
		}
		db = levelDB
	case memdb.Name:
		db = memdb.New()
	default:
		return nil, fmt.Errorf(
			"%w: db-type was %q but should have been one of {%s, %s}",
			ErrUnknownDatabase,
			dbConfig.Name,
			leveldb.Name,
			memdb.Name,
		)
	}

	// Wrap with corruptable DB
	db = corruptabledb.New(db)

	meterDB, err := meterdb.New(namespace, registerer, db)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to create meterdb: %w", err),
			db.Close(),
		)
	}
	return meterDB, nil
}
