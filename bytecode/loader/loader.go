// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package loader

import (
	"errors"

	"github.com/ava-labs/movegenesis/bytecode"
)

var ErrNoModules = errors.New("no modules found")

// Loader resolves a path into an ordered module group.
type Loader interface {
	// Load returns the modules found at [path] in link order.
	Load(path string) (bytecode.ModuleGroup, error)
}
