// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mr-tron/base58/base58"

	"github.com/ava-labs/movegenesis/utils/hashing"
)

const (
	hexPrefix   = "0x"
	checksumLen = 4
)

var (
	errInvalidEncoding  = errors.New("invalid encoding")
	errUnsupportedType  = errors.New("unsupported encoding")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
	errMissingHexPrefix = errors.New("missing 0x prefix to hex encoding")
)

// Encoding defines how bytes are converted to a string and vice versa
type Encoding uint8

const (
	// Hex specifies a hex plus 4 byte checksum encoding format
	Hex Encoding = iota
	// HexNC specifies a hex encoding format
	HexNC
	// CB58 specifies a base58 plus 4 byte checksum encoding format
	CB58
)

func (enc Encoding) String() string {
	switch enc {
	case Hex:
		return "hex"
	case HexNC:
		return "hexnc"
	case CB58:
		return "cb58"
	default:
		return errInvalidEncoding.Error()
	}
}

func (enc Encoding) valid() bool {
	switch enc {
	case Hex, HexNC, CB58:
		return true
	}
	return false
}

func (enc Encoding) MarshalJSON() ([]byte, error) {
	if !enc.valid() {
		return nil, errInvalidEncoding
	}
	return []byte(`"` + enc.String() + `"`), nil
}

func (enc *Encoding) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	switch strings.ToLower(str) {
	case `"hex"`:
		*enc = Hex
	case `"hexnc"`:
		*enc = HexNC
	case `"cb58"`:
		*enc = CB58
	default:
		return errInvalidEncoding
	}
	return nil
}

// Encode [bytes] to a string using the given encoding format. [bytes] may be
// nil, in which case it will be treated the same as an empty slice.
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Hex:
		return fmt.Sprintf("0x%x", appendChecksum(bytes)), nil
	case HexNC:
		return fmt.Sprintf("0x%x", bytes), nil
	case CB58:
		if len(bytes) > math.MaxInt32-checksumLen {
			return "", fmt.Errorf("%w: byte slice length (%d) too large", errUnsupportedType, len(bytes))
		}
		return base58.Encode(appendChecksum(bytes)), nil
	default:
		return "", errInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding
// If [str] is the empty string, returns a nil byte slice and nil error
func Decode(encoding Encoding, str string) ([]byte, error) {
	switch {
	case !encoding.valid():
		return nil, errInvalidEncoding
	case len(str) == 0:
		return nil, nil
	}

	var (
		decodedBytes []byte
		err          error
	)
	switch encoding {
	case Hex, HexNC:
		if !strings.HasPrefix(str, hexPrefix) {
			return nil, errMissingHexPrefix
		}
		decodedBytes, err = hex.DecodeString(str[len(hexPrefix):])
		if err != nil {
			return nil, err
		}
		if encoding == HexNC {
			return decodedBytes, nil
		}
	case CB58:
		decodedBytes, err = base58.Decode(str)
		if err != nil {
			return nil, err
		}
	}

	if len(decodedBytes) < checksumLen {
		return nil, errMissingChecksum
	}
	// Verify the checksum
	rawBytes := decodedBytes[:len(decodedBytes)-checksumLen]
	checksum := decodedBytes[len(decodedBytes)-checksumLen:]
	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}

func appendChecksum(bytes []byte) []byte {
	checked := make([]byte, len(bytes)+checksumLen)
	copy(checked, bytes)
	copy(checked[len(bytes):], hashing.Checksum(bytes, checksumLen))
	return checked
}
