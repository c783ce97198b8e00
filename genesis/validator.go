// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"fmt"
	"slices"

	"github.com/ava-labs/movegenesis/ids"
)

// Validator is a pending genesis validator. Validators are accumulated by the
// Builder but are not part of the bundle.
type Validator struct {
	PublicKey []byte `json:"publicKey"`
	Stake     uint64 `json:"stake"`
}

// NodeID returns the node ID derived from the validator's public key.
func (v Validator) NodeID() ids.NodeID {
	return ids.NodeIDFromPublicKey(v.PublicKey)
}

// Verify returns nil if [v] has a public key and a non-zero stake.
func (v Validator) Verify() error {
	switch {
	case len(v.PublicKey) == 0:
		return fmt.Errorf("%w: empty public key", ErrInvalidValidator)
	case v.Stake == 0:
		return fmt.Errorf("%w: %s has no stake", ErrInvalidValidator, v.NodeID())
	default:
		return nil
	}
}

func cloneValidators(validators []Validator) []Validator {
	cloned := make([]Validator, len(validators))
	for i, v := range validators {
		cloned[i] = Validator{
			PublicKey: slices.Clone(v.PublicKey),
			Stake:     v.Stake,
		}
	}
	return cloned
}
