// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package store persists genesis bundles to files and key-value databases.
package store

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
	"github.com/ava-labs/movegenesis/database"
	"github.com/ava-labs/movegenesis/database/prefixdb"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/logging"
)

var (
	ErrNotFound = errors.New("bundle not found")

	errEmptyName = errors.New("empty bundle name")

	bundlePrefix = []byte("bundle")
)

// Store keeps named bundles in a prefixed partition of a database. Bundles are
// stored in Binary mode and compressed.
type Store struct {
	db         database.Database
	compressor compression.Compressor
	log        logging.Logger
}

func New(
	db database.Database,
	compressor compression.Compressor,
	log logging.Logger,
) *Store {
	return &Store{
		db:         prefixdb.New(bundlePrefix, db),
		compressor: compressor,
		log:        log,
	}
}

func bundleKey(name string) ([]byte, error) {
	if name == "" {
		return nil, errEmptyName
	}
	return []byte(name), nil
}

// Put stores [bundle] under [name], replacing any previous bundle.
func (s *Store) Put(name string, bundle *genesis.Bundle) error {
	key, err := bundleKey(name)
	if err != nil {
		return err
	}
	data, err := bundle.Marshal(modulecodec.Binary)
	if err != nil {
		return err
	}
	compressed, err := s.compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("couldn't compress bundle %q: %w", name, err)
	}
	if err := s.db.Put(key, compressed); err != nil {
		return fmt.Errorf("couldn't store bundle %q: %w", name, err)
	}

	s.log.Debug("stored genesis bundle",
		zap.String("name", name),
		zap.Int("size", len(data)),
		zap.Int("compressedSize", len(compressed)),
	)
	return nil
}

// Get returns the bundle stored under [name], or ErrNotFound.
func (s *Store) Get(name string) (*genesis.Bundle, error) {
	key, err := bundleKey(name)
	if err != nil {
		return nil, err
	}
	compressed, err := s.db.Get(key)
	if err == database.ErrNotFound {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't fetch bundle %q: %w", name, err)
	}
	data, err := s.compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("couldn't decompress bundle %q: %w", name, err)
	}
	bundle, err := genesis.Parse(data, modulecodec.Binary)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse bundle %q: %w", name, err)
	}
	return bundle, nil
}

func (s *Store) Has(name string) (bool, error) {
	key, err := bundleKey(name)
	if err != nil {
		return false, err
	}
	return s.db.Has(key)
}

func (s *Store) Delete(name string) error {
	key, err := bundleKey(name)
	if err != nil {
		return err
	}
	return s.db.Delete(key)
}

// List returns the names of every stored bundle in ascending order.
func (s *Store) List() ([]string, error) {
	keys, err := database.Keys(s.db, nil)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = string(key)
	}
	return names, nil
}
