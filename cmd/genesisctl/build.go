// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/bytecode/loader"
	"github.com/ava-labs/movegenesis/config"
	"github.com/ava-labs/movegenesis/database/factory"
	"github.com/ava-labs/movegenesis/genesis"
	"github.com/ava-labs/movegenesis/genesis/store"
	"github.com/ava-labs/movegenesis/utils/compression"
	"github.com/ava-labs/movegenesis/utils/filesystem"
	"github.com/ava-labs/movegenesis/utils/logging"

	dto "github.com/prometheus/client_model/go"
)

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a genesis bundle from compiled module directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			buildConfig, err := config.GetBuildConfig(v)
			if err != nil {
				return err
			}

			logFactory := logging.NewFactory(buildConfig.LoggingConfig)
			defer logFactory.Close()

			log, err := logFactory.Make(loggerName)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			defer logMetrics(log, registry)

			bundle, err := build(buildConfig, filesystem.NewReader(), registry, log)
			if err != nil {
				log.Error("failed to build genesis bundle", zap.Error(err))
				return err
			}
			return persist(buildConfig, bundle, registry, log)
		},
	}
	cmd.Flags().AddFlagSet(config.BuildFlagSet())
	return cmd
}

// build assembles the bundle described by [c]. Module loads are recorded in
// [registerer].
func build(
	c config.BuildConfig,
	reader filesystem.Reader,
	registerer prometheus.Registerer,
	log logging.Logger,
) (*genesis.Bundle, error) {
	moduleLoader, err := loader.NewMetered(
		loader.NewFilesystem(reader, log),
		c.MetricsNamespace,
		registerer,
	)
	if err != nil {
		return nil, err
	}

	builder := genesis.NewBuilder(moduleLoader, log).
		SetStdlibSource(c.StdlibDir).
		SetFrameworkSource(c.FrameworkDir)

	groups, err := loadModuleDirs(moduleLoader, c.ModuleDirs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", genesis.ErrLoadFailure, err)
	}
	builder.AddModuleGroups(groups...)

	if c.ObjectsFile != "" {
		state, err := config.LoadObjects(reader, c.ObjectsFile)
		if err != nil {
			return nil, err
		}
		builder.AddObjects(state.Objects...)
		if state.GenesisContext != nil {
			builder.SetGenesisContext(*state.GenesisContext)
		}
	}

	for _, validator := range c.Validators {
		builder.AddValidator(validator.PublicKey, validator.Stake)
	}
	return builder.Build()
}

// loadModuleDirs loads every directory in [dirs] concurrently. The returned
// groups are in the same order as [dirs].
func loadModuleDirs(moduleLoader loader.Loader, dirs []string) ([]bytecode.ModuleGroup, error) {
	var (
		groups = make([]bytecode.ModuleGroup, len(dirs))
		eg     errgroup.Group
	)
	for i, dir := range dirs {
		eg.Go(func() error {
			group, err := moduleLoader.Load(dir)
			if err != nil {
				return err
			}
			groups[i] = group
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}

// persist writes [bundle] to every destination configured in [c].
func persist(
	c config.BuildConfig,
	bundle *genesis.Bundle,
	registerer prometheus.Registerer,
	log logging.Logger,
) error {
	compressor, err := compression.New(c.CompressionType, genesis.MaxBundleSize)
	if err != nil {
		return err
	}

	if c.OutputFile != "" {
		if err := store.WriteFile(c.OutputFile, bundle, c.EncodingMode, compressor); err != nil {
			return err
		}
		log.Info("wrote genesis bundle",
			zap.String("path", c.OutputFile),
			zap.Stringer("mode", c.EncodingMode),
			zap.Stringer("compression", c.CompressionType),
		)
	}

	if c.DatabaseConfig.Name == "" {
		return nil
	}
	db, err := factory.NewDatabase(c.DatabaseConfig, c.MetricsNamespace, registerer, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.New(db, compressor, log).Put(c.BundleName, bundle); err != nil {
		return err
	}
	log.Info("stored genesis bundle",
		zap.String("database", c.DatabaseConfig.Name),
		zap.String("name", c.BundleName),
	)
	return nil
}

func logMetrics(log logging.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		log.Warn("failed to gather metrics", zap.Error(err))
		return
	}

	var fields []zap.Field
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			for _, label := range metric.GetLabel() {
				name += "_" + label.GetValue()
			}

			switch family.GetType() {
			case dto.MetricType_COUNTER:
				fields = append(fields, zap.Float64(name, metric.GetCounter().GetValue()))
			case dto.MetricType_GAUGE:
				fields = append(fields, zap.Float64(name, metric.GetGauge().GetValue()))
			case dto.MetricType_HISTOGRAM:
				histogram := metric.GetHistogram()
				fields = append(fields,
					zap.Uint64(name+"_count", histogram.GetSampleCount()),
					zap.Float64(name+"_sum", histogram.GetSampleSum()),
				)
			}
		}
	}
	log.Debug("collected metrics", fields...)
}
