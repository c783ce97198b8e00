// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modulecodec

import (
	"errors"
	"fmt"
	"strings"
)

var errInvalidMode = errors.New("invalid encoding mode")

// Mode selects how modules are represented in a serialized document.
type Mode uint8

const (
	// Binary represents each module as its raw native bytes.
	Binary Mode = iota
	// HumanReadable represents each module as standard base64 text.
	HumanReadable
)

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case HumanReadable:
		return "human-readable"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func (m Mode) valid() bool {
	switch m {
	case Binary, HumanReadable:
		return true
	}
	return false
}

// ModeFromString is the inverse of Mode.String(). "text" and "json" are
// accepted as aliases of HumanReadable.
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "binary":
		return Binary, nil
	case "human-readable", "text", "json":
		return HumanReadable, nil
	default:
		return 0, fmt.Errorf("%w: %q", errInvalidMode, s)
	}
}

func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.valid() {
		return nil, errInvalidMode
	}
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return errInvalidMode
	}
	mode, err := ModeFromString(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
