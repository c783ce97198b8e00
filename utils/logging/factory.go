// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type factory struct {
	config  Config
	display io.Writer

	lock    sync.Mutex
	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured with
// the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return newFactory(config, os.Stdout)
}

func newFactory(config Config, display io.Writer) *factory {
	return &factory{
		config:  config,
		display: display,
		loggers: make(map[string]Logger),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(config Config) (Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}

	var cores []WrappedCore
	if !config.DisableWriterDisplaying {
		cores = append(cores, NewWrappedCore(
			config.DisplayLevel,
			nopCloser{Writer: f.display},
			newDisplayEncoder(config.LogFormat),
		))
	}
	if config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, newFileEncoder()))
	}

	l := NewLogger(config.MsgPrefix, cores...)
	f.loggers[config.LoggerName] = l
	return l, nil
}

func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	return f.makeLogger(config)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, logger := range f.loggers {
		logger.Stop()
	}
	f.loggers = nil
}

func newDisplayEncoder(format Format) zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == JSON {
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(config)
	}
	return zapcore.NewConsoleEncoder(config)
}

func newFileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
