// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bytecodetest provides helpers for tests that need compiled modules.
package bytecodetest

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/bytecode"
)

// NewModule returns a module named [name] with [body], failing the test on
// error.
func NewModule(t testing.TB, name string, body []byte) *bytecode.CompiledModule {
	t.Helper()

	m, err := bytecode.New(name, body)
	require.NoError(t, err)
	return m
}

// NewGroup returns a group with one module per name. Each body is derived
// from the module's name.
func NewGroup(t testing.TB, names ...string) bytecode.ModuleGroup {
	t.Helper()

	group := make(bytecode.ModuleGroup, len(names))
	for i, name := range names {
		group[i] = NewModule(t, name, []byte(fmt.Sprintf("body of %s", name)))
	}
	return group
}

// Module generates arbitrary valid modules.
func Module() gopter.Gen {
	return gopter.CombineGens(
		gen.Identifier(),
		gen.SliceOf(gen.UInt8()),
	).Map(func(values []interface{}) *bytecode.CompiledModule {
		m, err := bytecode.New(values[0].(string), values[1].([]byte))
		if err != nil {
			panic(err)
		}
		return m
	})
}

// Group generates arbitrary module groups, including empty ones.
func Group() gopter.Gen {
	return gen.SliceOf(Module()).Map(func(modules []*bytecode.CompiledModule) bytecode.ModuleGroup {
		return bytecode.ModuleGroup(modules)
	})
}

// Groups generates arbitrary sequences of module groups.
func Groups() gopter.Gen {
	return gen.SliceOf(Group())
}
