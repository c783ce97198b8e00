// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
	"github.com/ava-labs/movegenesis/objects"
)

var (
	_ json.Marshaler   = (*Bundle)(nil)
	_ json.Unmarshaler = (*Bundle)(nil)

	errTrailingData = errors.New("trailing data after bundle")
	errNullBundle   = errors.New("null bundle")
	errUnknownMode  = errors.New("unknown encoding mode")
)

// binaryBundle is the Binary mode layout. Each module leaf is the module's
// native bytes.
type binaryBundle struct {
	ModuleGroups   [][][]byte        `serialize:"true"`
	Objects        []objects.Object  `serialize:"true"`
	GenesisContext objects.TxContext `serialize:"true"`
}

// textBundle is the HumanReadable mode layout. Each module leaf is base64
// text.
type textBundle struct {
	ModuleGroups   [][]string        `json:"moduleGroups"`
	Objects        []objects.Object  `json:"objects"`
	GenesisContext objects.TxContext `json:"genesisContext"`
}

// Marshal returns the representation of [b] in [mode]. The mode is not
// recorded: Parse must be called with the same mode.
func (b *Bundle) Marshal(mode modulecodec.Mode) ([]byte, error) {
	if mode != modulecodec.Binary && mode != modulecodec.HumanReadable {
		return nil, fmt.Errorf("%w: %w: %d", ErrEncode, errUnknownMode, mode)
	}
	reps, err := modulecodec.EncodeGroups(b.moduleGroups, mode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case modulecodec.Binary:
		data, err := Codec.Marshal(CodecVersion, &binaryBundle{
			ModuleGroups:   reps,
			Objects:        b.objects,
			GenesisContext: b.genesisContext,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return data, nil
	default:
		groups := make([][]string, len(reps))
		for i, groupReps := range reps {
			groups[i] = make([]string, len(groupReps))
			for j, rep := range groupReps {
				groups[i][j] = string(rep)
			}
		}
		objs := b.objects
		if objs == nil {
			objs = []objects.Object{}
		}
		data, err := json.MarshalIndent(textBundle{
			ModuleGroups:   groups,
			Objects:        objs,
			GenesisContext: b.genesisContext,
		}, "", "\t")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return data, nil
	}
}

// Parse returns the bundle represented by [b] in [mode]. Every failure wraps
// ErrDecode.
func Parse(b []byte, mode modulecodec.Mode) (*Bundle, error) {
	switch mode {
	case modulecodec.Binary:
		var bb binaryBundle
		if _, err := Codec.Unmarshal(b, &bb); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		groups, err := modulecodec.DecodeGroups(bb.ModuleGroups, mode)
		if err != nil {
			return nil, err
		}
		return newBundle(groups, bb.Objects, bb.GenesisContext), nil
	case modulecodec.HumanReadable:
		var tb textBundle
		if err := decodeStrict(b, &tb); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		reps := make([][][]byte, len(tb.ModuleGroups))
		for i, group := range tb.ModuleGroups {
			reps[i] = make([][]byte, len(group))
			for j, rep := range group {
				reps[i][j] = []byte(rep)
			}
		}
		groups, err := modulecodec.DecodeGroups(reps, mode)
		if err != nil {
			return nil, err
		}
		return newBundle(groups, tb.Objects, tb.GenesisContext), nil
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrDecode, errUnknownMode, mode)
	}
}

// decodeStrict rejects unknown fields and anything after the document.
func decodeStrict(b []byte, v interface{}) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errNullBundle
	}
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return errTrailingData
	}
	return nil
}

// MarshalJSON returns the HumanReadable representation of the bundle.
func (b *Bundle) MarshalJSON() ([]byte, error) {
	return b.Marshal(modulecodec.HumanReadable)
}

// UnmarshalJSON parses the HumanReadable representation of a bundle.
func (b *Bundle) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data, modulecodec.HumanReadable)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
