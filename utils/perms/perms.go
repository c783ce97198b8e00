// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

// Permissions for files and directories written by this module.
const (
	ReadOnly         = 0o400
	ReadWrite        = 0o640
	ReadWriteExecute = 0o750
)
