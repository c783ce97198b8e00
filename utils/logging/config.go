// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Plain displays human readable console lines.
	Plain Format = iota
	// JSON displays one JSON object per line.
	JSON

	plainStr = "plain"
	jsonStr  = "json"

	FormatDescription = "The structure of log format. Defaults to 'plain' which formats lines for humans. Options: 'plain', 'json'"
)

var errUnknownFormat = errors.New("unknown log format")

// Format is the encoding used for displayed logs.
type Format int

// ToFormat is the inverse of Format.String()
func ToFormat(f string) (Format, error) {
	switch strings.ToLower(f) {
	case plainStr, "":
		return Plain, nil
	case jsonStr:
		return JSON, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) String() string {
	if f == JSON {
		return jsonStr
	}
	return plainStr
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	LogFormat               Format `json:"logFormat"`
	MsgPrefix               string `json:"-"`
	LoggerName              string `json:"-"`
}

// RotatingWriterConfig configures the file output. When Directory is empty
// no file is written.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// DefaultConfig displays Info and above and does not write files.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   0,
		},
		LogLevel:     Info,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}
