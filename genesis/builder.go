// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/bytecode/loader"
	"github.com/ava-labs/movegenesis/ids"
	"github.com/ava-labs/movegenesis/objects"
	"github.com/ava-labs/movegenesis/utils/logging"

	safemath "github.com/ava-labs/movegenesis/utils/math"
)

const (
	stdlibKind    = "stdlib"
	frameworkKind = "framework"
)

// Builder accumulates the inputs of a genesis bundle. Every method but Build
// only records its arguments and returns the builder for chaining. A builder
// is consumed by Build and must not be shared between goroutines.
type Builder struct {
	loader loader.Loader
	log    logging.Logger

	stdlibSource    string
	frameworkSource string
	moduleGroups    []bytecode.ModuleGroup
	objects         []objects.Object
	genesisContext  *objects.TxContext
	validators      []Validator

	consumed bool
}

// NewBuilder returns a builder that resolves module sources with [loader].
func NewBuilder(loader loader.Loader, log logging.Logger) *Builder {
	return &Builder{
		loader: loader,
		log:    log,
	}
}

// usable reports whether the builder may still accumulate inputs.
func (b *Builder) usable(method string) bool {
	if b.consumed {
		b.log.Warn("ignoring call on consumed genesis builder",
			zap.String("method", method),
			zap.Error(ErrBuilderConsumed),
		)
	}
	return !b.consumed
}

// SetStdlibSource records the path of the standard library module group.
func (b *Builder) SetStdlibSource(path string) *Builder {
	if b.usable("SetStdlibSource") {
		b.stdlibSource = path
	}
	return b
}

// SetFrameworkSource records the path of the framework module group.
func (b *Builder) SetFrameworkSource(path string) *Builder {
	if b.usable("SetFrameworkSource") {
		b.frameworkSource = path
	}
	return b
}

// AddModuleGroups appends [groups] after every previously added group. The
// groups are placed after the standard library and framework groups.
func (b *Builder) AddModuleGroups(groups ...bytecode.ModuleGroup) *Builder {
	if b.usable("AddModuleGroups") {
		for _, group := range groups {
			b.moduleGroups = append(b.moduleGroups, slices.Clone(group))
		}
	}
	return b
}

func (b *Builder) AddObject(obj objects.Object) *Builder {
	return b.AddObjects(obj)
}

// AddObjects appends [objs] in order.
func (b *Builder) AddObjects(objs ...objects.Object) *Builder {
	if b.usable("AddObjects") {
		b.objects = append(b.objects, cloneObjects(objs)...)
	}
	return b
}

// SetGenesisContext overrides the default genesis context.
func (b *Builder) SetGenesisContext(ctx objects.TxContext) *Builder {
	if b.usable("SetGenesisContext") {
		b.genesisContext = &ctx
	}
	return b
}

// AddValidator records a pending validator. Pending validators are reported
// by Build but never change the bundle it produces.
func (b *Builder) AddValidator(publicKey []byte, stake uint64) *Builder {
	if b.usable("AddValidator") {
		b.validators = append(b.validators, Validator{
			PublicKey: slices.Clone(publicKey),
			Stake:     stake,
		})
	}
	return b
}

// Validators returns a copy of the pending validators.
func (b *Builder) Validators() []Validator {
	return cloneValidators(b.validators)
}

// Build loads the standard library and framework groups and assembles the
// bundle. Groups are ordered [stdlib, framework, added groups...]. Build
// either returns a complete bundle or an error, and consumes the builder in
// both cases.
func (b *Builder) Build() (*Bundle, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	stdlib, err := b.load(stdlibKind, b.stdlibSource)
	if err != nil {
		return nil, err
	}
	framework, err := b.load(frameworkKind, b.frameworkSource)
	if err != nil {
		return nil, err
	}
	b.reportValidators()

	groups := make([]bytecode.ModuleGroup, 0, 2+len(b.moduleGroups))
	groups = append(groups, stdlib, framework)
	groups = append(groups, b.moduleGroups...)

	genesisContext := objects.DefaultGenesisContext()
	if b.genesisContext != nil {
		genesisContext = *b.genesisContext
	}

	bundle := newBundle(groups, b.objects, genesisContext)
	b.moduleGroups = nil
	b.objects = nil
	b.genesisContext = nil

	summary := bundle.Summary()
	b.log.Info("built genesis bundle",
		zap.Int("moduleGroups", summary.ModuleGroups),
		zap.Int("modules", summary.Modules),
		zap.Int("objects", summary.Objects),
	)
	return bundle, nil
}

func (b *Builder) load(kind string, path string) (bytecode.ModuleGroup, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, kind)
	}

	b.log.Info("loading module group",
		zap.String("kind", kind),
		zap.String("path", path),
	)
	group, err := b.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s from %q: %w", ErrLoadFailure, kind, path, err)
	}
	for i, m := range group {
		if m == nil {
			return nil, fmt.Errorf("%w: %s from %q: nil module at index %d", ErrLoadFailure, kind, path, i)
		}
	}
	return group, nil
}

// reportValidators logs the pending validators, which are never part of the
// bundle. Invalid entries and an overflowing total stake are reported in the
// same line.
func (b *Builder) reportValidators() {
	if len(b.validators) == 0 {
		return
	}

	var (
		totalStake    uint64
		stakeOverflow bool
		nodeIDs       = make([]ids.NodeID, len(b.validators))
		invalid       []error
	)
	for i, v := range b.validators {
		if err := v.Verify(); err != nil {
			invalid = append(invalid, fmt.Errorf("validator %d: %w", i, err))
		}
		newTotal, err := safemath.Add64(totalStake, v.Stake)
		if err != nil {
			stakeOverflow = true
			newTotal = math.MaxUint64
		}
		totalStake = newTotal
		nodeIDs[i] = v.NodeID()
	}

	b.log.Warn("ignoring pending genesis validators",
		zap.Int("count", len(b.validators)),
		zap.Uint64("totalStake", totalStake),
		zap.Bool("totalStakeOverflow", stakeOverflow),
		zap.Stringers("nodeIDs", nodeIDs),
		zap.Errors("invalid", invalid),
	)
}
