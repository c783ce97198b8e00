// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package modulecodec converts compiled modules to and from their serialized
// representation. The mode is never stored with the data: the same mode must
// be supplied on encode and decode.
package modulecodec

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ava-labs/movegenesis/bytecode"
)

var (
	ErrEncode = errors.New("couldn't encode module")
	ErrDecode = errors.New("couldn't decode module")
)

// Encode returns the representation of [m] in [mode]. In Binary mode this is
// the module's native layout. In HumanReadable mode it is the standard base64
// encoding of that layout.
func Encode(m *bytecode.CompiledModule, mode Mode) ([]byte, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrEncode, errInvalidMode, mode)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil module", ErrEncode)
	}
	native, err := m.Serialize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if mode == Binary {
		return native, nil
	}
	text := make([]byte, base64.StdEncoding.EncodedLen(len(native)))
	base64.StdEncoding.Encode(text, native)
	return text, nil
}

// EncodeString returns the HumanReadable representation of [m] as a string.
func EncodeString(m *bytecode.CompiledModule) (string, error) {
	text, err := Encode(m, HumanReadable)
	return string(text), err
}

// Decode parses a module from its representation in [mode].
func Decode(rep []byte, mode Mode) (*bytecode.CompiledModule, error) {
	native := rep
	switch mode {
	case Binary:
	case HumanReadable:
		native = make([]byte, base64.StdEncoding.DecodedLen(len(rep)))
		n, err := base64.StdEncoding.Strict().Decode(native, rep)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed base64: %w", ErrDecode, err)
		}
		native = native[:n]
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrDecode, errInvalidMode, mode)
	}

	m, err := bytecode.Deserialize(native)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return m, nil
}

// DecodeString parses a module from its HumanReadable representation.
func DecodeString(text string) (*bytecode.CompiledModule, error) {
	return Decode([]byte(text), HumanReadable)
}

// EncodeGroups applies Encode to every module of [groups], preserving the
// group and module order.
func EncodeGroups(groups []bytecode.ModuleGroup, mode Mode) ([][][]byte, error) {
	reps := make([][][]byte, len(groups))
	for i, group := range groups {
		reps[i] = make([][]byte, len(group))
		for j, m := range group {
			rep, err := Encode(m, mode)
			if err != nil {
				return nil, fmt.Errorf("group %d module %d: %w", i, j, err)
			}
			reps[i][j] = rep
		}
	}
	return reps, nil
}

// DecodeGroups is the inverse of EncodeGroups.
func DecodeGroups(reps [][][]byte, mode Mode) ([]bytecode.ModuleGroup, error) {
	groups := make([]bytecode.ModuleGroup, len(reps))
	for i, groupReps := range reps {
		groups[i] = make(bytecode.ModuleGroup, len(groupReps))
		for j, rep := range groupReps {
			m, err := Decode(rep, mode)
			if err != nil {
				return nil, fmt.Errorf("group %d module %d: %w", i, j, err)
			}
			groups[i][j] = m
		}
	}
	return groups, nil
}
