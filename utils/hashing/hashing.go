// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"

	// ripemd160 is only used to shorten public keys into node identifiers.
	"golang.org/x/crypto/ripemd160" //nolint:gosec
)

const (
	HashLen = sha256.Size
	AddrLen = ripemd160.Size
)

// Sha256 returns the sha256 digest of [buf].
func Sha256(buf []byte) [HashLen]byte {
	return sha256.Sum256(buf)
}

// Ripemd160 returns the ripemd160 digest of [buf].
func Ripemd160(buf []byte) [AddrLen]byte {
	ripe := ripemd160.New() //nolint:gosec
	// hash.Hash never returns a write error
	_, _ = ripe.Write(buf)

	var digest [AddrLen]byte
	copy(digest[:], ripe.Sum(nil))
	return digest
}

// PublicKeyAddress returns ripemd160(sha256(publicKey)), the 20 byte
// identifier of a validator key.
func PublicKeyAddress(publicKey []byte) [AddrLen]byte {
	digest := Sha256(publicKey)
	return Ripemd160(digest[:])
}

// Checksum returns the last [length] bytes of the sha256 digest of [bytes].
// Module frames and checked text encodings both append it.
//
// Panics if length > HashLen.
func Checksum(bytes []byte, length int) []byte {
	digest := Sha256(bytes)
	return digest[HashLen-length:]
}
