// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package loader_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/movegenesis/bytecode/bytecodetest"
	"github.com/ava-labs/movegenesis/bytecode/loader"
	"github.com/ava-labs/movegenesis/bytecode/loader/loadermock"
)

func TestMeteredLoader(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	group := bytecodetest.NewGroup(t, "a", "b")
	errLoad := errors.New("load failed")

	inner := loadermock.NewLoader(ctrl)
	inner.EXPECT().Load("stdlib").Return(group, nil)
	inner.EXPECT().Load("framework").Return(nil, errLoad)

	registry := prometheus.NewRegistry()
	metered, err := loader.NewMetered(inner, "genesis", registry)
	require.NoError(err)

	loaded, err := metered.Load("stdlib")
	require.NoError(err)
	require.True(group.Equal(loaded))

	_, err = metered.Load("framework")
	require.ErrorIs(err, errLoad)

	count, err := testutil.GatherAndCount(registry)
	require.NoError(err)
	require.Equal(4, count)

	families, err := registry.Gather()
	require.NoError(err)
	values := map[string]float64{}
	for _, family := range families {
		metric := family.GetMetric()[0]
		switch {
		case metric.GetCounter() != nil:
			values[family.GetName()] = metric.GetCounter().GetValue()
		case metric.GetHistogram() != nil:
			values[family.GetName()] = float64(metric.GetHistogram().GetSampleCount())
		}
	}
	require.Equal(
		map[string]float64{
			"genesis_modules_loaded":      2,
			"genesis_module_bytes_loaded": float64(group.Size()),
			"genesis_load_failures":       1,
			"genesis_load_duration":       2,
		},
		values,
	)
}

func TestMeteredLoaderDuplicateRegistration(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	registry := prometheus.NewRegistry()
	_, err := loader.NewMetered(loadermock.NewLoader(ctrl), "genesis", registry)
	require.NoError(err)

	_, err = loader.NewMetered(loadermock.NewLoader(ctrl), "genesis", registry)
	require.Error(err) //nolint:forbidigo // prometheus error is not a sentinel
}
