// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis assembles the genesis bundle of a network: ordered groups
// of compiled modules, the initial objects and the genesis transaction
// context.
package genesis

import (
	"slices"

	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/objects"
)

// Bundle is the immutable genesis artifact. Bundles are produced by a Builder
// or by Parse.
type Bundle struct {
	moduleGroups   []bytecode.ModuleGroup
	objects        []objects.Object
	genesisContext objects.TxContext
}

// newBundle takes ownership of its arguments.
func newBundle(
	moduleGroups []bytecode.ModuleGroup,
	objs []objects.Object,
	genesisContext objects.TxContext,
) *Bundle {
	return &Bundle{
		moduleGroups:   moduleGroups,
		objects:        objs,
		genesisContext: genesisContext,
	}
}

// ModuleGroups returns a copy of the bundle's module groups in link order.
func (b *Bundle) ModuleGroups() []bytecode.ModuleGroup {
	groups := make([]bytecode.ModuleGroup, len(b.moduleGroups))
	for i, group := range b.moduleGroups {
		groups[i] = slices.Clone(group)
	}
	return groups
}

// Objects returns a copy of the bundle's initial objects.
func (b *Bundle) Objects() []objects.Object {
	return cloneObjects(b.objects)
}

func (b *Bundle) GenesisContext() objects.TxContext {
	return b.genesisContext
}

// Equal returns true if [o] has structurally equal module groups, objects
// and genesis context, including order.
func (b *Bundle) Equal(o *Bundle) bool {
	if b == nil || o == nil {
		return b == o
	}
	return bytecode.EqualGroups(b.moduleGroups, o.moduleGroups) &&
		slices.EqualFunc(b.objects, o.objects, objects.Object.Equal) &&
		b.genesisContext == o.genesisContext
}

// Summary describes the contents of a bundle.
type Summary struct {
	ModuleGroups   int               `json:"moduleGroups"`
	Modules        int               `json:"modules"`
	ModuleBytes    int               `json:"moduleBytes"`
	ModuleNames    [][]string        `json:"moduleNames"`
	Objects        int               `json:"objects"`
	GenesisContext objects.TxContext `json:"genesisContext"`
}

func (b *Bundle) Summary() Summary {
	s := Summary{
		ModuleGroups:   len(b.moduleGroups),
		ModuleNames:    make([][]string, len(b.moduleGroups)),
		Objects:        len(b.objects),
		GenesisContext: b.genesisContext,
	}
	for i, group := range b.moduleGroups {
		s.Modules += len(group)
		s.ModuleBytes += group.Size()
		s.ModuleNames[i] = group.Names()
	}
	return s
}

func cloneObjects(objs []objects.Object) []objects.Object {
	if objs == nil {
		return nil
	}
	cloned := make([]objects.Object, len(objs))
	for i, obj := range objs {
		obj.Contents = slices.Clone(obj.Contents)
		cloned[i] = obj
	}
	return cloned
}
