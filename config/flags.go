// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
	"github.com/ava-labs/movegenesis/database/leveldb"
	"github.com/ava-labs/movegenesis/database/memdb"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/constants"
	"github.com/ava-labs/movegenesis/utils/logging"
)

var (
	defaultNetworkName = constants.LocalName

	homeDir         = os.ExpandEnv("$HOME")
	prefixedAppName = fmt.Sprintf(".%s", constants.AppName)
	defaultDataDir  = filepath.Join(homeDir, prefixedAppName)
	defaultDBDir    = filepath.Join(defaultDataDir, "db")
	defaultLogDir   = filepath.Join(defaultDataDir, "logs")
)

func addBuildFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Keys are the flag names; values from the environment (%s_<FLAG>) and the command line take precedence", constants.EnvVarPrefix))

	// Network
	fs.String(NetworkNameKey, defaultNetworkName, "Network the genesis bundle is built for")

	// Module sources
	fs.String(StdlibDirKey, "", "Directory of compiled standard library modules (*.mv)")
	fs.String(FrameworkDirKey, "", "Directory of compiled framework modules (*.mv)")
	fs.StringSlice(ModuleDirsKey, nil, "Directories of additional compiled module groups, in the order they are appended")

	// Genesis state
	fs.String(ObjectsFileKey, "", "YAML or JSON file of genesis objects and the genesis transaction context")
	fs.StringSlice(ValidatorsKey, nil, "Pending genesis validator as <cb58 public key>:<stake>. May be repeated")

	// Output
	fs.String(OutputFileKey, "", "File the bundle is written to. If empty, no file is written")
	addFormatFlags(fs)
	addDatabaseFlags(fs)

	// Metrics
	fs.String(MetricsNamespaceKey, constants.AppName, "Namespace of the reported metrics")

	addLoggingFlags(fs)
}

func addFormatFlags(fs *pflag.FlagSet) {
	fs.String(EncodingModeKey, modulecodec.Binary.String(), fmt.Sprintf("Encoding of the bundle file. Should be one of {%s, %s}", modulecodec.Binary, modulecodec.HumanReadable))
	fs.String(CompressionTypeKey, compression.TypeNone.String(), fmt.Sprintf("Compression applied to the bundle file and database entry. Should be one of {%s, %s}", compression.TypeNone, compression.TypeZstd))
}

func addDatabaseFlags(fs *pflag.FlagSet) {
	fs.String(DBTypeKey, "", fmt.Sprintf("Database the bundle is stored in. If empty, no database is used. Otherwise, should be one of {%s, %s}", leveldb.Name, memdb.Name))
	fs.String(DBPathKey, defaultDBDir, "Path to database directory")
	fs.String(BundleNameKey, "", fmt.Sprintf("Name the bundle is stored under in the database. Defaults to the value of --%s", NetworkNameKey))
}

func addLoggingFlags(fs *pflag.FlagSet) {
	fs.String(LogsDirKey, defaultLogDir, "Logging directory. If empty, logs are only displayed")
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", fmt.Sprintf("The log display level. If left blank, will inherit the value of %s. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}", LogLevelKey))
	fs.String(LogFormatKey, logging.Plain.String(), logging.FormatDescription)
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated.")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files.")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files.")
	fs.Bool(LogRotaterCompressKey, false, "Enables the compression of rotated log files through gzip.")
	fs.Bool(LogDisableDisplayKey, false, "Disables displaying logs on stdout.")
}

// BuildFlagSet returns the complete set of flags for building a bundle
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	addBuildFlags(fs)
	return fs
}

// InspectFlagSet returns the complete set of flags for reading back a bundle
func InspectFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	fs.String(ConfigFileKey, "", "Specifies a config file")
	fs.String(NetworkNameKey, defaultNetworkName, "Network the genesis bundle was built for")
	addFormatFlags(fs)
	addDatabaseFlags(fs)
	addLoggingFlags(fs)
	return fs
}
