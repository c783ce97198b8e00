// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Const variables to be exported
const (
	// AppName is the name of this application
	AppName = "movegenesis"

	// EnvVarPrefix prefixes every environment variable read by this
	// application.
	EnvVarPrefix = "MOVEGENESIS"
)
