// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import "slices"

// Keys returns every key in [db] with the given [prefix], in ascending order.
func Keys(db Iteratee, prefix []byte) ([][]byte, error) {
	it := db.NewIteratorWithPrefix(prefix)
	defer it.Release()

	var keys [][]byte
	for it.Next() {
		keys = append(keys, slices.Clone(it.Key()))
	}
	return keys, it.Error()
}
