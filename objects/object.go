// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package objects defines the initial on-chain objects and the transaction
// context carried by a genesis bundle. Both are opaque to the bundle: they
// are preserved exactly as given.
package objects

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/movegenesis/ids"
)

// Object is an initial on-chain object.
type Object struct {
	ID       ids.ID      `serialize:"true" json:"id"`
	Owner    ids.ShortID `serialize:"true" json:"owner"`
	Version  uint64      `serialize:"true" json:"version"`
	Type     string      `serialize:"true" json:"type"`
	Contents []byte      `serialize:"true" json:"contents"`
}

// Equal returns true if [o] and [other] hold the same values. Nil and empty
// contents are equal.
func (o Object) Equal(other Object) bool {
	return o.ID == other.ID &&
		o.Owner == other.Owner &&
		o.Version == other.Version &&
		o.Type == other.Type &&
		bytes.Equal(o.Contents, other.Contents)
}

func (o Object) String() string {
	return fmt.Sprintf("%s(%s, v%d)", o.Type, o.ID, o.Version)
}
