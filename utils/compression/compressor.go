// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compression

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDecompressedMsgTooLarge = errors.New("decompressed msg too large")
	ErrMsgTooLarge             = errors.New("msg too large to be compressed")

	errUnknownType = errors.New("unknown compression type")
)

// Compressor compresses and decompresses persisted payloads.
type Compressor interface {
	Compress([]byte) ([]byte, error)
	Decompress([]byte) ([]byte, error)
}

// Type is the compression applied to a persisted payload.
type Type byte

const (
	TypeNone Type = iota + 1
	TypeZstd
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// TypeFromString is the inverse of Type.String()
func TypeFromString(s string) (Type, error) {
	switch strings.ToLower(s) {
	case TypeNone.String():
		return TypeNone, nil
	case TypeZstd.String():
		return TypeZstd, nil
	default:
		return TypeNone, fmt.Errorf("%w: %q", errUnknownType, s)
	}
}

func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// New returns the compressor of type [t] that refuses inputs and outputs
// larger than [maxSize] bytes.
func New(t Type, maxSize int64) (Compressor, error) {
	switch t {
	case TypeNone:
		return NewNoCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(maxSize), nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownType, t)
	}
}
