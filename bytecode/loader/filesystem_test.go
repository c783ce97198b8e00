// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/bytecode/bytecodetest"
	"github.com/ava-labs/movegenesis/utils/filesystem"
	"github.com/ava-labs/movegenesis/utils/logging"
)

func serialize(t *testing.T, m *bytecode.CompiledModule) []byte {
	b, err := m.Serialize()
	require.NoError(t, err)
	return b
}

func TestFilesystemLoadOrder(t *testing.T) {
	require := require.New(t)

	group := bytecodetest.NewGroup(t, "vector", "option", "coin")
	reader := &filesystem.MockReader{
		Files: map[string][]byte{
			"stdlib/02_coin.mv":   serialize(t, group[2]),
			"stdlib/00_vector.mv": serialize(t, group[0]),
			"stdlib/01_option.mv": serialize(t, group[1]),
			"stdlib/README.md":    []byte("ignored"),
		},
		Dirs: map[string][]fs.DirEntry{
			"stdlib": {
				filesystem.MockFile{MockName: "sources.mv", MockIsDir: true},
			},
		},
	}

	loaded, err := NewFilesystem(reader, logging.NoLog{}).Load("stdlib")
	require.NoError(err)
	require.True(group.Equal(loaded))
	require.Equal([]string{"vector", "option", "coin"}, loaded.Names())
}

func TestFilesystemLoadErrors(t *testing.T) {
	errRead := errors.New("read failed")

	tests := map[string]struct {
		reader      *filesystem.MockReader
		expectedErr error
	}{
		"missing directory": {
			reader:      &filesystem.MockReader{},
			expectedErr: fs.ErrNotExist,
		},
		"no modules": {
			reader: &filesystem.MockReader{
				Files: map[string][]byte{
					"framework/notes.txt": nil,
				},
			},
			expectedErr: ErrNoModules,
		},
		"read dir failure": {
			reader: &filesystem.MockReader{
				ReadDirErr: errRead,
			},
			expectedErr: errRead,
		},
		"read file failure": {
			reader: &filesystem.MockReader{
				Files: map[string][]byte{
					"framework/a.mv": nil,
				},
				ReadFileErr: errRead,
			},
			expectedErr: errRead,
		},
		"malformed module": {
			reader: &filesystem.MockReader{
				Files: map[string][]byte{
					"framework/a.mv": []byte("not a module"),
				},
			},
			expectedErr: bytecode.ErrBadMagic,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFilesystem(test.reader, logging.NoLog{}).Load("framework")
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestFilesystemLoadNamesFile(t *testing.T) {
	reader := &filesystem.MockReader{
		Files: map[string][]byte{
			"framework/a.mv": serialize(t, bytecodetest.NewModule(t, "a", nil)),
			"framework/b.mv": []byte("corrupt"),
		},
	}
	_, err := NewFilesystem(reader, logging.NoLog{}).Load("framework")
	require.ErrorContains(t, err, filepath.Join("framework", "b.mv"))
}

func TestFilesystemLoadDisk(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	group := bytecodetest.NewGroup(t, "a", "b")
	require.NoError(os.WriteFile(filepath.Join(dir, "1.mv"), serialize(t, group[0]), 0o600))
	require.NoError(os.WriteFile(filepath.Join(dir, "2.mv"), serialize(t, group[1]), 0o600))
	require.NoError(os.Mkdir(filepath.Join(dir, "nested.mv"), 0o700))

	loaded, err := NewFilesystem(filesystem.NewReader(), logging.NoLog{}).Load(dir)
	require.NoError(err)
	require.True(group.Equal(loaded))
}
