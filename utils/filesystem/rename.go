// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ava-labs/movegenesis/utils/perms"
)

// RenameIfExists renames [a] to [b] if [a] exists. Returns true if the rename
// happened.
func RenameIfExists(a, b string) (bool, error) {
	err := os.Rename(a, b)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// WriteFileAtomic writes [data] to a temporary file next to [path] and renames
// it into place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, perms.ReadWriteExecute); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	_, err = RenameIfExists(tmpPath, path)
	return err
}
