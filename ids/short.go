// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/ava-labs/movegenesis/utils/formatting"
	"github.com/ava-labs/movegenesis/utils/hashing"
)

const ShortIDLen = 20

// ShortEmpty is a useful all zero value
var (
	ShortEmpty = ShortID{}

	testIDCounter atomic.Uint64
)

// ShortID wraps a 20 byte hash as an identifier
type ShortID [ShortIDLen]byte

// ToShortID attempt to convert a byte slice into an id
func ToShortID(bytes []byte) (ShortID, error) {
	if len(bytes) != ShortIDLen {
		return ShortID{}, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidIDLen, ShortIDLen, len(bytes))
	}
	return ShortID(bytes), nil
}

// ShortFromString is the inverse of ShortID.String()
func ShortFromString(idStr string) (ShortID, error) {
	bytes, err := formatting.Decode(formatting.CB58, idStr)
	if err != nil {
		return ShortID{}, err
	}
	return ToShortID(bytes)
}

// ShortFromPrefixedString returns a ShortID assuming the cb58 format is
// prefixed
func ShortFromPrefixedString(idStr, prefix string) (ShortID, error) {
	if !strings.HasPrefix(idStr, prefix) {
		return ShortID{}, fmt.Errorf("ID: %s is missing the prefix: %s", idStr, prefix)
	}
	return ShortFromString(strings.TrimPrefix(idStr, prefix))
}

// GenerateTestShortID returns a new ID that should only be used for testing
func GenerateTestShortID() ShortID {
	id := GenerateTestID()
	return hashing.Ripemd160(id[:])
}

func (id ShortID) MarshalJSON() ([]byte, error) {
	str, err := formatting.Encode(formatting.CB58, id[:])
	if err != nil {
		return nil, err
	}
	return []byte(`"` + str + `"`), nil
}

func (id *ShortID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	} else if len(str) < 2 {
		return errMissingQuotes
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	// Parse CB58 formatted string to bytes
	bytes, err := formatting.Decode(formatting.CB58, str[1:lastIndex])
	if err != nil {
		return fmt.Errorf("couldn't decode ID to bytes: %w", err)
	}
	*id, err = ToShortID(bytes)
	return err
}

func (id *ShortID) UnmarshalText(text []byte) error {
	return id.UnmarshalJSON([]byte(`"` + string(text) + `"`))
}

// Bytes returns the 20 byte hash as a slice. It is assumed this slice is not
// modified.
func (id ShortID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id.
func (id ShortID) Hex() string {
	return hex.EncodeToString(id.Bytes())
}

func (id ShortID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of an ID
	str, _ := formatting.Encode(formatting.CB58, id.Bytes())
	return str
}

// PrefixedString returns the String representation with a prefix added
func (id ShortID) PrefixedString(prefix string) string {
	return prefix + id.String()
}

func (id ShortID) Compare(other ShortID) int {
	return bytes.Compare(id[:], other[:])
}
