// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"fmt"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/filesystem"
	"github.com/ava-labs/movegenesis/utils/perms"
)

// WriteFile atomically writes [bundle] to [path] in [mode], compressed with
// [compressor].
func WriteFile(
	path string,
	bundle *genesis.Bundle,
	mode modulecodec.Mode,
	compressor compression.Compressor,
) error {
	data, err := bundle.Marshal(mode)
	if err != nil {
		return err
	}
	compressed, err := compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("couldn't compress bundle: %w", err)
	}
	if err := filesystem.WriteFileAtomic(path, compressed, perms.ReadWrite); err != nil {
		return fmt.Errorf("couldn't write bundle to %q: %w", path, err)
	}
	return nil
}

// ReadFile reads a bundle written by WriteFile with the same [mode] and
// compression.
func ReadFile(
	reader filesystem.Reader,
	path string,
	mode modulecodec.Mode,
	compressor compression.Compressor,
) (*genesis.Bundle, error) {
	compressed, err := reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read bundle from %q: %w", path, err)
	}
	data, err := compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("couldn't decompress bundle from %q: %w", path, err)
	}
	bundle, err := genesis.Parse(data, mode)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse bundle from %q: %w", path, err)
	}
	return bundle, nil
}
