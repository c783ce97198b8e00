// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linearcodec

import (
	"math"

	"github.com/ava-labs/movegenesis/codec"
	"github.com/ava-labs/movegenesis/codec/reflectcodec"
)

// DefaultMaxSliceLength bounds every serialized slice that does not declare
// its own `len` tag.
const DefaultMaxSliceLength = math.MaxInt32

// New returns a codec that serializes fields in declaration order, reading
// fields tagged with any of [tagNames].
func New(tagNames []string, maxSliceLen uint32) codec.Codec {
	return reflectcodec.New(tagNames, maxSliceLen)
}

// NewDefault is a convenience constructor; it returns a new codec with
// reasonable default values.
func NewDefault() codec.Codec {
	return New([]string{reflectcodec.DefaultTagName}, DefaultMaxSliceLength)
}
