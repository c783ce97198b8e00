// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey         = "config-file"
	NetworkNameKey        = "network-id"
	StdlibDirKey          = "stdlib-dir"
	FrameworkDirKey       = "framework-dir"
	ModuleDirsKey         = "module-dirs"
	ObjectsFileKey        = "objects-file"
	ValidatorsKey         = "validator"
	OutputFileKey         = "output-file"
	EncodingModeKey       = "encoding-mode"
	CompressionTypeKey    = "compression-type"
	DBTypeKey             = "db-type"
	DBPathKey             = "db-dir"
	BundleNameKey         = "bundle-name"
	MetricsNamespaceKey   = "metrics-namespace"
	LogsDirKey            = "log-dir"
	LogLevelKey           = "log-level"
	LogDisplayLevelKey    = "log-display-level"
	LogFormatKey          = "log-format"
	LogRotaterMaxSizeKey  = "log-rotater-max-size"
	LogRotaterMaxFilesKey = "log-rotater-max-files"
	LogRotaterMaxAgeKey   = "log-rotater-max-age"
	LogRotaterCompressKey = "log-rotater-compress-enabled"
	LogDisableDisplayKey  = "log-disable-display"
)
