// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
)

var (
	_ fs.DirEntry = MockFile{}
	_ Reader      = (*MockReader)(nil)
)

// MockFile is an implementation of fs.DirEntry for unit testing.
type MockFile struct {
	MockName    string
	MockIsDir   bool
	MockType    fs.FileMode
	MockInfo    fs.FileInfo
	MockInfoErr error
}

func (m MockFile) Name() string {
	return m.MockName
}

func (m MockFile) IsDir() bool {
	return m.MockIsDir
}

func (m MockFile) Type() fs.FileMode {
	return m.MockType
}

func (m MockFile) Info() (fs.FileInfo, error) {
	return m.MockInfo, m.MockInfoErr
}

// MockReader is an in-memory Reader for unit testing. Files are keyed by
// their full path; directories are derived from the file paths plus any
// entries in Dirs.
type MockReader struct {
	Files map[string][]byte
	Dirs  map[string][]fs.DirEntry

	// ReadDirErr and ReadFileErr, if set, are returned for every call.
	ReadDirErr  error
	ReadFileErr error
}

func (m *MockReader) ReadDir(dirname string) ([]fs.DirEntry, error) {
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}

	entries, dirExists := m.Dirs[dirname]
	entries = append([]fs.DirEntry(nil), entries...)
	for path := range m.Files {
		if filepath.Dir(path) == dirname {
			entries = append(entries, MockFile{MockName: filepath.Base(path)})
			dirExists = true
		}
	}
	if !dirExists {
		return nil, &fs.PathError{Op: "open", Path: dirname, Err: fs.ErrNotExist}
	}
	// os.ReadDir returns entries sorted by filename
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

func (m *MockReader) ReadFile(filename string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[filename]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filename, Err: fs.ErrNotExist}
	}
	return data, nil
}
