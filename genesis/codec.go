// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/ava-labs/movegenesis/codec"
	"github.com/ava-labs/movegenesis/codec/linearcodec"
	"github.com/ava-labs/movegenesis/utils/units"
)

const (
	// CodecVersion is the codec version binary bundles are written with.
	CodecVersion = 0

	// MaxBundleSize bounds the binary form of a bundle.
	MaxBundleSize = 512 * units.MiB
)

// Codec serializes bundles in Binary mode.
var Codec codec.Manager

func init() {
	c := linearcodec.NewDefault()
	Codec = codec.NewManager(MaxBundleSize)
	if err := Codec.RegisterCodec(CodecVersion, c); err != nil {
		panic(err)
	}
}
