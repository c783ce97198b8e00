// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerLevels(t *testing.T) {
	require := require.New(t)

	buf := &bytes.Buffer{}
	config := DefaultConfig()
	config.DisplayLevel = Warn
	config.LogFormat = JSON

	f := newFactory(config, buf)
	log, err := f.Make("genesis")
	require.NoError(err)

	log.Info("hidden")
	log.Warn("ignoring pending genesis validators", zap.Int("count", 2))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(lines, 1)

	var entry map[string]interface{}
	require.NoError(json.Unmarshal(lines[0], &entry))
	require.Equal("ignoring pending genesis validators", entry["msg"])
	require.Equal(float64(2), entry["count"])
	require.Equal("WARN ", entry["level"])

	require.False(log.Enabled(Info))
	log.SetLevel(Debug)
	require.True(log.Enabled(Debug))
	require.False(log.Enabled(Verbo))
}

func TestFatalDoesNotExit(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := newFactory(DefaultConfig(), buf).Make("fatal")
	require.NoError(t, err)

	log.Fatal("still running")
	require.Contains(t, buf.String(), "still running")
}

func TestWithAttachesFields(t *testing.T) {
	require := require.New(t)

	buf := &bytes.Buffer{}
	config := DefaultConfig()
	config.LogFormat = JSON
	log, err := newFactory(config, buf).Make("with")
	require.NoError(err)

	log.With(zap.String("kind", "stdlib")).Info("loading module group")
	require.Contains(buf.String(), `"kind":"stdlib"`)
}

func TestFactoryWritesRotatingFile(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.Directory = t.TempDir()
	config.DisableWriterDisplaying = true

	f := NewFactory(config)
	log, err := f.Make("builder")
	require.NoError(err)

	_, err = f.Make("builder")
	require.ErrorContains(err, "already exists")

	log.Info("written to file")
	f.Close()

	contents, err := os.ReadFile(filepath.Join(config.Directory, "builder.log"))
	require.NoError(err)
	require.Contains(string(contents), "written to file")
}

func TestToFormat(t *testing.T) {
	require := require.New(t)

	format, err := ToFormat("JSON")
	require.NoError(err)
	require.Equal(JSON, format)

	_, err = ToFormat("xml")
	require.ErrorIs(err, errUnknownFormat)
}
