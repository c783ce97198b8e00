// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/utils/constants"
)

const (
	Client = constants.AppName

	// ModuleFormat is the compiled module format version written by this
	// release.
	ModuleFormat = bytecode.CurrentVersion
	// MinModuleFormat is the oldest compiled module format version accepted.
	MinModuleFormat = bytecode.MinVersion
	// BundleCodec is the codec version binary bundles are written with.
	BundleCodec = genesis.CodecVersion
)

// Current is the version of this release.
var Current = &Application{
	Name:  Client,
	Major: 1,
	Minor: 0,
	Patch: 0,
}
