// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bytecode

import "slices"

// ModuleGroup is one package of modules. Order is link order.
type ModuleGroup []*CompiledModule

// Equal compares [g] and [o] element-wise, including order.
func (g ModuleGroup) Equal(o ModuleGroup) bool {
	return slices.EqualFunc(g, o, (*CompiledModule).Equal)
}

// Names returns the module names of [g] in order.
func (g ModuleGroup) Names() []string {
	names := make([]string, len(g))
	for i, m := range g {
		names[i] = m.Name()
	}
	return names
}

// Size returns the summed native size of every module in [g].
func (g ModuleGroup) Size() int {
	size := 0
	for _, m := range g {
		size += m.Size()
	}
	return size
}

// EqualGroups compares two sequences of groups, including order.
func EqualGroups(a, b []ModuleGroup) bool {
	return slices.EqualFunc(a, b, ModuleGroup.Equal)
}
