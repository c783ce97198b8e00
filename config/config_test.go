// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
	"github.com/ava-labs/movegenesis/database/leveldb"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/constants"
	"github.com/ava-labs/movegenesis/utils/formatting"
	"github.com/ava-labs/movegenesis/utils/logging"
)

func TestGetBuildConfigDefaults(t *testing.T) {
	require := require.New(t)

	v, err := BuildViper(BuildFlagSet(), []string{
		"--" + StdlibDirKey + "=stdlib",
		"--" + OutputFileKey + "=genesis.blob",
	})
	require.NoError(err)

	config, err := GetBuildConfig(v)
	require.NoError(err)
	require.Equal(constants.LocalID, config.NetworkID)
	require.Equal("stdlib", config.StdlibDir)
	require.Empty(config.FrameworkDir)
	require.Empty(config.ModuleDirs)
	require.Empty(config.Validators)
	require.Equal("genesis.blob", config.OutputFile)
	require.Equal(modulecodec.Binary, config.EncodingMode)
	require.Equal(compression.TypeNone, config.CompressionType)
	require.Empty(config.DatabaseConfig.Name)
	require.Equal(constants.LocalName, config.BundleName)
	require.Equal(constants.AppName, config.MetricsNamespace)
	require.Equal(logging.Info, config.LoggingConfig.LogLevel)
	require.Equal(logging.Info, config.LoggingConfig.DisplayLevel)
}

func TestGetBuildConfigFlags(t *testing.T) {
	require := require.New(t)

	publicKey := []byte("validator public key")
	key, err := formatting.Encode(formatting.CB58, publicKey)
	require.NoError(err)

	v, err := BuildViper(BuildFlagSet(), []string{
		"--" + NetworkNameKey + "=testnet",
		"--" + StdlibDirKey + "=stdlib",
		"--" + FrameworkDirKey + "=framework",
		"--" + ModuleDirsKey + "=a,b",
		"--" + ModuleDirsKey + "=c",
		"--" + ValidatorsKey + "=" + key + ":100",
		"--" + EncodingModeKey + "=json",
		"--" + CompressionTypeKey + "=zstd",
		"--" + DBTypeKey + "=LevelDB",
		"--" + LogLevelKey + "=debug",
		"--" + LogDisplayLevelKey + "=warn",
	})
	require.NoError(err)

	config, err := GetBuildConfig(v)
	require.NoError(err)
	require.Equal(constants.TestnetID, config.NetworkID)
	require.Equal("framework", config.FrameworkDir)
	require.Equal([]string{"a", "b", "c"}, config.ModuleDirs)
	require.Equal([]genesis.Validator{{PublicKey: publicKey, Stake: 100}}, config.Validators)
	require.Empty(config.OutputFile)
	require.Equal(modulecodec.HumanReadable, config.EncodingMode)
	require.Equal(compression.TypeZstd, config.CompressionType)
	require.Equal(leveldb.Name, config.DatabaseConfig.Name)
	require.Equal(constants.TestnetName, config.BundleName)
	require.Equal(logging.Debug, config.LoggingConfig.LogLevel)
	require.Equal(logging.Warn, config.LoggingConfig.DisplayLevel)
}

func TestGetBuildConfigFromFile(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	configFile := setupConfigJSON(t, root, fmt.Sprintf(`{
		%q: "framework-from-file",
		%q: "from-file",
		%q: "memdb",
		%q: ["x", "y"]
	}`, FrameworkDirKey, BundleNameKey, DBTypeKey, ModuleDirsKey))

	v, err := BuildViper(BuildFlagSet(), []string{
		"--" + ConfigFileKey + "=" + configFile,
		"--" + BundleNameKey + "=from-flag",
	})
	require.NoError(err)

	config, err := GetBuildConfig(v)
	require.NoError(err)
	require.Equal("framework-from-file", config.FrameworkDir)
	require.Equal("from-flag", config.BundleName)
	require.Equal([]string{"x", "y"}, config.ModuleDirs)
}

func TestGetBuildConfigFromEnv(t *testing.T) {
	require := require.New(t)

	t.Setenv(constants.EnvVarPrefix+"_OUTPUT_FILE", "from-env.json")
	t.Setenv(constants.EnvVarPrefix+"_ENCODING_MODE", "human-readable")
	t.Setenv("GENESIS_ROOT", "/genesis")

	v, err := BuildViper(BuildFlagSet(), []string{
		"--" + StdlibDirKey + "=$GENESIS_ROOT/stdlib",
	})
	require.NoError(err)

	config, err := GetBuildConfig(v)
	require.NoError(err)
	require.Equal("from-env.json", config.OutputFile)
	require.Equal(modulecodec.HumanReadable, config.EncodingMode)
	require.Equal(filepath.Join("/genesis", "stdlib"), config.StdlibDir)
}

func TestGetBuildConfigErrors(t *testing.T) {
	tests := map[string]struct {
		args        []string
		expectedErr error
	}{
		"no output": {
			args:        nil,
			expectedErr: errNoOutput,
		},
		"unknown database": {
			args:        []string{"--" + DBTypeKey + "=rocksdb"},
			expectedErr: errUnknownDBType,
		},
		"malformed validator": {
			args: []string{
				"--" + OutputFileKey + "=out",
				"--" + ValidatorsKey + "=nostake",
			},
			expectedErr: errInvalidValidator,
		},
		"empty module dir": {
			args: []string{
				"--" + OutputFileKey + "=out",
				"--" + ModuleDirsKey + "=a,,b",
			},
			expectedErr: errEmptyModuleDir,
		},
		"unknown network": {
			args: []string{
				"--" + OutputFileKey + "=out",
				"--" + NetworkNameKey + "=moon",
			},
			expectedErr: constants.ErrParseNetworkName,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			v, err := BuildViper(BuildFlagSet(), test.args)
			require.NoError(err)

			_, err = GetBuildConfig(v)
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestBuildViperUnknownFlag(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{"--not-a-flag"})
	require.Error(t, err)
}

func TestBuildViperHelp(t *testing.T) {
	fs := BuildFlagSet()
	fs.SetOutput(io.Discard)

	_, err := BuildViper(fs, []string{"--help"})
	require.ErrorIs(t, err, pflag.ErrHelp)
}

func TestParseValidator(t *testing.T) {
	publicKey := []byte{0x01, 0x02, 0x03}
	key, err := formatting.Encode(formatting.CB58, publicKey)
	require.NoError(t, err)

	tests := map[string]struct {
		entry             string
		expectedValidator genesis.Validator
		expectedErr       error
	}{
		"valid": {
			entry: key + ":5",
			expectedValidator: genesis.Validator{
				PublicKey: publicKey,
				Stake:     5,
			},
		},
		"missing separator": {
			entry:       key,
			expectedErr: errInvalidValidator,
		},
		"bad checksum": {
			entry:       "1111111:5",
			expectedErr: errInvalidValidator,
		},
		"negative stake": {
			entry:       key + ":-5",
			expectedErr: strconv.ErrSyntax,
		},
		"stake overflow": {
			entry:       key + ":18446744073709551616",
			expectedErr: strconv.ErrRange,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			validator, err := ParseValidator(test.entry)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedValidator, validator)
		})
	}
}

// setups config json file and writes content
func setupConfigJSON(t *testing.T, rootPath string, value string) string {
	configFilePath := filepath.Join(rootPath, "config.json")
	require.NoError(t, os.WriteFile(configFilePath, []byte(value), 0o600))
	return configFilePath
}

func TestGetInspectConfig(t *testing.T) {
	require := require.New(t)

	v, err := BuildViper(InspectFlagSet(), []string{
		"--" + NetworkNameKey + "=testnet",
		"--" + EncodingModeKey + "=text",
		"--" + CompressionTypeKey + "=zstd",
		"--" + DBTypeKey + "=memdb",
	})
	require.NoError(err)

	config, err := GetInspectConfig(v)
	require.NoError(err)
	require.Equal(modulecodec.HumanReadable, config.EncodingMode)
	require.Equal(compression.TypeZstd, config.CompressionType)
	require.Equal("memdb", config.DatabaseConfig.Name)
	require.Equal(constants.TestnetName, config.BundleName)

	_, err = BuildViper(InspectFlagSet(), []string{"--" + OutputFileKey + "=out"})
	require.Error(err)
}
