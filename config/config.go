// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/movegenesis/bytecode/modulecodec"
	"github.com/ava-labs/movegenesis/database/factory"
	"github.com/ava-labs/movegenesis/database/leveldb"
	"github.com/ava-labs/movegenesis/database/memdb"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/constants"
	"github.com/ava-labs/movegenesis/utils/formatting"
	"github.com/ava-labs/movegenesis/utils/logging"
)

var (
	errNoOutput         = errors.New("neither an output file nor a database was configured")
	errUnknownDBType    = errors.New("unknown database type")
	errInvalidValidator = errors.New("invalid validator")
	errEmptyModuleDir   = errors.New("empty module directory")
)

// BuildConfig is everything needed to build and persist one bundle.
type BuildConfig struct {
	NetworkID uint32 `json:"networkID"`

	StdlibDir    string   `json:"stdlibDir"`
	FrameworkDir string   `json:"frameworkDir"`
	ModuleDirs   []string `json:"moduleDirs"`

	ObjectsFile string              `json:"objectsFile"`
	Validators  []genesis.Validator `json:"validators"`

	OutputFile      string           `json:"outputFile"`
	EncodingMode    modulecodec.Mode `json:"encodingMode"`
	CompressionType compression.Type `json:"compressionType"`

	DatabaseConfig factory.DatabaseConfig `json:"databaseConfig"`
	BundleName     string                 `json:"bundleName"`

	MetricsNamespace string `json:"metricsNamespace"`

	LoggingConfig logging.Config `json:"loggingConfig"`
}

// BuildViper parses [args] into [fs] and returns a viper instance where
// command line values take precedence over the environment, which takes
// precedence over the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return NewViper(fs)
}

// NewViper returns a viper instance bound to the already parsed [fs].
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(constants.EnvVarPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// GetBuildConfig reads a BuildConfig from [v].
func GetBuildConfig(v *viper.Viper) (BuildConfig, error) {
	var (
		config BuildConfig
		err    error
	)

	config.NetworkID, err = constants.NetworkID(v.GetString(NetworkNameKey))
	if err != nil {
		return BuildConfig{}, err
	}

	config.StdlibDir = getExpandedString(v, StdlibDirKey)
	config.FrameworkDir = getExpandedString(v, FrameworkDirKey)
	for _, dir := range v.GetStringSlice(ModuleDirsKey) {
		if dir == "" {
			return BuildConfig{}, fmt.Errorf("%w in %s", errEmptyModuleDir, ModuleDirsKey)
		}
		config.ModuleDirs = append(config.ModuleDirs, os.ExpandEnv(dir))
	}

	config.ObjectsFile = getExpandedString(v, ObjectsFileKey)
	config.Validators, err = getValidators(v)
	if err != nil {
		return BuildConfig{}, err
	}

	config.OutputFile = getExpandedString(v, OutputFileKey)
	config.EncodingMode, err = modulecodec.ModeFromString(v.GetString(EncodingModeKey))
	if err != nil {
		return BuildConfig{}, err
	}
	config.CompressionType, err = compression.TypeFromString(v.GetString(CompressionTypeKey))
	if err != nil {
		return BuildConfig{}, err
	}

	config.DatabaseConfig, err = getDatabaseConfig(v)
	if err != nil {
		return BuildConfig{}, err
	}
	config.BundleName = v.GetString(BundleNameKey)
	if config.BundleName == "" {
		config.BundleName = constants.NetworkName(config.NetworkID)
	}
	if config.OutputFile == "" && config.DatabaseConfig.Name == "" {
		return BuildConfig{}, errNoOutput
	}

	config.MetricsNamespace = v.GetString(MetricsNamespaceKey)

	config.LoggingConfig, err = GetLoggingConfig(v)
	if err != nil {
		return BuildConfig{}, err
	}
	return config, nil
}

// InspectConfig is everything needed to read back a persisted bundle.
type InspectConfig struct {
	EncodingMode    modulecodec.Mode `json:"encodingMode"`
	CompressionType compression.Type `json:"compressionType"`

	DatabaseConfig factory.DatabaseConfig `json:"databaseConfig"`
	BundleName     string                 `json:"bundleName"`

	LoggingConfig logging.Config `json:"loggingConfig"`
}

// GetInspectConfig reads an InspectConfig from [v].
func GetInspectConfig(v *viper.Viper) (InspectConfig, error) {
	var (
		config InspectConfig
		err    error
	)
	config.EncodingMode, err = modulecodec.ModeFromString(v.GetString(EncodingModeKey))
	if err != nil {
		return InspectConfig{}, err
	}
	config.CompressionType, err = compression.TypeFromString(v.GetString(CompressionTypeKey))
	if err != nil {
		return InspectConfig{}, err
	}
	config.DatabaseConfig, err = getDatabaseConfig(v)
	if err != nil {
		return InspectConfig{}, err
	}
	config.BundleName = v.GetString(BundleNameKey)
	if config.BundleName == "" {
		networkID, err := constants.NetworkID(v.GetString(NetworkNameKey))
		if err != nil {
			return InspectConfig{}, err
		}
		config.BundleName = constants.NetworkName(networkID)
	}
	config.LoggingConfig, err = GetLoggingConfig(v)
	if err != nil {
		return InspectConfig{}, err
	}
	return config, nil
}

func getDatabaseConfig(v *viper.Viper) (factory.DatabaseConfig, error) {
	dbType := strings.ToLower(v.GetString(DBTypeKey))
	switch dbType {
	case "", leveldb.Name, memdb.Name:
	default:
		return factory.DatabaseConfig{}, fmt.Errorf("%w: %q", errUnknownDBType, dbType)
	}
	return factory.DatabaseConfig{
		Name: dbType,
		Path: getExpandedString(v, DBPathKey),
	}, nil
}

// GetLoggingConfig reads the logging flags from [v].
func GetLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	loggingConfig.Directory = getExpandedString(v, LogsDirKey)

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressKey)
	loggingConfig.DisableWriterDisplaying = v.GetBool(LogDisableDisplayKey)
	return loggingConfig, nil
}

func getValidators(v *viper.Viper) ([]genesis.Validator, error) {
	entries := v.GetStringSlice(ValidatorsKey)
	if len(entries) == 0 {
		return nil, nil
	}

	validators := make([]genesis.Validator, len(entries))
	for i, entry := range entries {
		validator, err := ParseValidator(entry)
		if err != nil {
			return nil, err
		}
		validators[i] = validator
	}
	return validators, nil
}

// ParseValidator parses "<cb58 public key>:<stake>".
func ParseValidator(s string) (genesis.Validator, error) {
	keyStr, stakeStr, ok := strings.Cut(s, ":")
	if !ok {
		return genesis.Validator{}, fmt.Errorf("%w %q: expected <public key>:<stake>", errInvalidValidator, s)
	}
	publicKey, err := formatting.Decode(formatting.CB58, keyStr)
	if err != nil {
		return genesis.Validator{}, fmt.Errorf("%w %q: couldn't decode public key: %w", errInvalidValidator, s, err)
	}
	stake, err := strconv.ParseUint(stakeStr, 10, 64)
	if err != nil {
		return genesis.Validator{}, fmt.Errorf("%w %q: couldn't parse stake: %w", errInvalidValidator, s, err)
	}
	return genesis.Validator{
		PublicKey: publicKey,
		Stake:     stake,
	}, nil
}

func getExpandedString(v *viper.Viper, key string) string {
	return os.ExpandEnv(v.GetString(key))
}
