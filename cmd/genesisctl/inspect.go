// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/movegenesis/config"
	"github.com/ava-labs/movegenesis/database/factory"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/genesis/store"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/constants"
	"github.com/ava-labs/movegenesis/utils/filesystem"
	"github.com/ava-labs/movegenesis/utils/logging"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print a summary of a genesis bundle read from a file or a database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspectConfig, log, closeLog, err := newInspectEnv(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			bundle, err := readBundle(inspectConfig, path, log)
			if err != nil {
				return err
			}

			summary, err := json.MarshalIndent(bundle.Summary(), "", "\t")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(summary))
			return err
		},
	}
	cmd.Flags().AddFlagSet(config.InspectFlagSet())
	return cmd
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the genesis bundles stored in a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inspectConfig, log, closeLog, err := newInspectEnv(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			db, err := factory.NewDatabase(inspectConfig.DatabaseConfig, constants.AppName, prometheus.NewRegistry(), log)
			if err != nil {
				return err
			}
			defer db.Close()

			s := store.New(db, compression.NewNoCompressor(), log)
			names, err := s.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().AddFlagSet(config.InspectFlagSet())
	return cmd
}

func newInspectEnv(cmd *cobra.Command) (config.InspectConfig, logging.Logger, func(), error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return config.InspectConfig{}, nil, nil, err
	}
	inspectConfig, err := config.GetInspectConfig(v)
	if err != nil {
		return config.InspectConfig{}, nil, nil, err
	}

	logFactory := logging.NewFactory(inspectConfig.LoggingConfig)
	log, err := logFactory.Make(loggerName)
	if err != nil {
		logFactory.Close()
		return config.InspectConfig{}, nil, nil, err
	}
	return inspectConfig, log, logFactory.Close, nil
}

// readBundle reads the bundle at [path], or from the configured database when
// [path] is empty.
func readBundle(c config.InspectConfig, path string, log logging.Logger) (*genesis.Bundle, error) {
	compressor, err := compression.New(c.CompressionType, genesis.MaxBundleSize)
	if err != nil {
		return nil, err
	}

	if path != "" {
		log.Debug("reading genesis bundle",
			zap.String("path", path),
			zap.Stringer("mode", c.EncodingMode),
		)
		return store.ReadFile(filesystem.NewReader(), path, c.EncodingMode, compressor)
	}

	db, err := factory.NewDatabase(c.DatabaseConfig, constants.AppName, prometheus.NewRegistry(), log)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return store.New(db, compressor, log).Get(c.BundleName)
}
