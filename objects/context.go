// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package objects

import "github.com/ava-labs/movegenesis/ids"

// TxContext attributes the entities created by a transaction.
type TxContext struct {
	Sender     ids.ShortID `serialize:"true" json:"sender"`
	Digest     ids.ID      `serialize:"true" json:"digest"`
	Epoch      uint64      `serialize:"true" json:"epoch"`
	IDsCreated uint64      `serialize:"true" json:"idsCreated"`
}

// DefaultGenesisContext returns a fresh context for entities created at
// genesis: the empty sender and the empty digest at epoch 0.
func DefaultGenesisContext() TxContext {
	return TxContext{
		Sender: ids.ShortEmpty,
		Digest: ids.Empty,
	}
}
