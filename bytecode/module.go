// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bytecode holds compiled bytecode modules as opaque values.
//
// A module's native binary layout is:
//
//	magic   [4]byte  0xA1 0x1C 0xEB 0x0B
//	version uint32
//	name    uint16 length-prefixed UTF-8 string
//	body    uint32 length-prefixed bytes
//	check   [4]byte  last 4 bytes of the sha256 of everything before it
//
// All integers are big-endian. Deserialization only verifies this framing;
// the body is never interpreted.
package bytecode

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/ava-labs/movegenesis/utils/hashing"
	"github.com/ava-labs/movegenesis/utils/units"
	"github.com/ava-labs/movegenesis/utils/wrappers"
)

const (
	// CurrentVersion is the format version written by New.
	CurrentVersion uint32 = 6
	// MinVersion is the oldest format version Deserialize accepts.
	MinVersion uint32 = 5

	// MaxBodySize bounds the body of a single module.
	MaxBodySize = 4 * units.MiB

	headerLen   = len(magic) + wrappers.IntLen
	checksumLen = 4
)

var (
	magic = [4]byte{0xA1, 0x1C, 0xEB, 0x0B}

	ErrBadMagic           = errors.New("bad module magic")
	ErrUnsupportedVersion = errors.New("unsupported module format version")
	ErrTrailingBytes      = errors.New("trailing bytes after module")
	ErrBadChecksum        = errors.New("invalid module checksum")

	errEmptyName   = errors.New("empty module name")
	errNameTooLong = errors.New("module name too long")
	errBodyTooLong = errors.New("module body too large")
)

// CompiledModule is an already-validated unit of bytecode. It is immutable.
type CompiledModule struct {
	name    string
	version uint32
	body    []byte
}

// New returns a module named [name] wrapping [body] at the current format
// version. [body] is copied.
func New(name string, body []byte) (*CompiledModule, error) {
	m := &CompiledModule{
		name:    name,
		version: CurrentVersion,
		body:    slices.Clone(body),
	}
	if err := m.verify(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CompiledModule) verify() error {
	switch {
	case len(m.name) == 0:
		return errEmptyName
	case len(m.name) > wrappers.MaxStringLen:
		return fmt.Errorf("%w: %d > %d", errNameTooLong, len(m.name), wrappers.MaxStringLen)
	case len(m.body) > MaxBodySize:
		return fmt.Errorf("%w: %d > %d", errBodyTooLong, len(m.body), MaxBodySize)
	case m.version < MinVersion || m.version > CurrentVersion:
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, m.version)
	default:
		return nil
	}
}

func (m *CompiledModule) Name() string {
	return m.name
}

func (m *CompiledModule) Version() uint32 {
	return m.version
}

// Body returns a copy of the module's bytecode.
func (m *CompiledModule) Body() []byte {
	return slices.Clone(m.body)
}

// Size returns the length of the module's native binary layout.
func (m *CompiledModule) Size() int {
	return headerLen + wrappers.StringLen(m.name) + wrappers.IntLen + len(m.body) + checksumLen
}

// Serialize returns the module's native binary layout.
func (m *CompiledModule) Serialize() ([]byte, error) {
	if err := m.verify(); err != nil {
		return nil, fmt.Errorf("couldn't serialize module %q: %w", m.name, err)
	}

	p := wrappers.Packer{
		Bytes: make([]byte, 0, m.Size()),
	}
	p.PackFixedBytes(magic[:])
	p.PackInt(m.version)
	p.PackStr(m.name)
	p.PackBytes(m.body)
	p.PackFixedBytes(hashing.Checksum(p.Bytes, checksumLen))
	return p.Bytes, p.Err
}

// Deserialize parses a module from its native binary layout. The result does
// not alias [b].
func Deserialize(b []byte) (*CompiledModule, error) {
	p := wrappers.Packer{
		Bytes: b,
	}
	if prefix := p.UnpackFixedBytes(len(magic)); p.Err == nil && !bytes.Equal(prefix, magic[:]) {
		return nil, fmt.Errorf("%w: 0x%x", ErrBadMagic, prefix)
	}
	version := p.UnpackInt()
	name := p.UnpackStr()
	body := p.UnpackLimitedBytes(MaxBodySize)
	checked := p.Offset
	checksum := p.UnpackFixedBytes(checksumLen)
	if p.Err != nil {
		return nil, fmt.Errorf("couldn't parse module: %w", p.Err)
	}
	if p.Offset != len(b) {
		return nil, fmt.Errorf("%w: read %d provided %d", ErrTrailingBytes, p.Offset, len(b))
	}
	if !bytes.Equal(checksum, hashing.Checksum(b[:checked], checksumLen)) {
		return nil, ErrBadChecksum
	}

	m := &CompiledModule{
		name:    name,
		version: version,
		body:    slices.Clone(body),
	}
	if err := m.verify(); err != nil {
		return nil, err
	}
	return m, nil
}

// Equal returns true if [o] has the same name, version and body as [m].
func (m *CompiledModule) Equal(o *CompiledModule) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.name == o.name &&
		m.version == o.version &&
		bytes.Equal(m.body, o.body)
}

func (m *CompiledModule) String() string {
	return fmt.Sprintf("%s(v%d, %d bytes)", m.name, m.version, len(m.body))
}
