// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"errors"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
)

var (
	// ErrSourceMissing is returned by Build when a required module source was
	// never set.
	ErrSourceMissing = errors.New("module source missing")

	// ErrLoadFailure is returned by Build when the loader could not produce a
	// module group.
	ErrLoadFailure = errors.New("couldn't load module group")

	ErrBuilderConsumed  = errors.New("builder already consumed")
	ErrInvalidValidator = errors.New("invalid genesis validator")

	// ErrEncode and ErrDecode are shared with the module codec so that a
	// failure at any level of a bundle matches the same sentinel.
	ErrEncode = modulecodec.ErrEncode
	ErrDecode = modulecodec.ErrDecode
)
