// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package loader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/utils/filesystem"
	"github.com/ava-labs/movegenesis/utils/logging"
)

// ModuleExtension is the file extension of a compiled module.
const ModuleExtension = ".mv"

var _ Loader = (*fsLoader)(nil)

type fsLoader struct {
	reader filesystem.Reader
	log    logging.Logger
}

// NewFilesystem returns a Loader that reads every compiled module file in a
// directory. Files are loaded in lexical name order, so callers encode link
// order in the file names. Sub-directories and other files are ignored.
func NewFilesystem(reader filesystem.Reader, log logging.Logger) Loader {
	return &fsLoader{
		reader: reader,
		log:    log,
	}
}

func (l *fsLoader) Load(path string) (bytecode.ModuleGroup, error) {
	entries, err := l.reader.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read module directory %q: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ModuleExtension) {
			l.log.Debug("skipping directory entry",
				zap.String("path", path),
				zap.String("name", name),
			)
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoModules, path)
	}
	slices.Sort(names)

	group := make(bytecode.ModuleGroup, len(names))
	for i, name := range names {
		file := filepath.Join(path, name)
		b, err := l.reader.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("couldn't read module file %q: %w", file, err)
		}
		m, err := bytecode.Deserialize(b)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse module file %q: %w", file, err)
		}
		l.log.Verbo("loaded module",
			zap.String("file", file),
			zap.Stringer("module", m),
		)
		group[i] = m
	}
	return group, nil
}
