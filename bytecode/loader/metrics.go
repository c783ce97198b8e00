// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package loader

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/movegenesis/bytecode"
	"github.com/ava-labs/movegenesis/utils/wrappers"
)

var _ Loader = (*meteredLoader)(nil)

type metrics struct {
	modulesLoaded prometheus.Counter
	bytesLoaded   prometheus.Counter
	loadFailures  prometheus.Counter
	loadDuration  prometheus.Histogram
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		modulesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modules_loaded",
			Help:      "Number of modules successfully loaded",
		}),
		bytesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "module_bytes_loaded",
			Help:      "Serialized size of every module successfully loaded",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_failures",
			Help:      "Number of module group loads that failed",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration",
			Help:      "Latency of a module group load in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.modulesLoaded),
		registerer.Register(m.bytesLoaded),
		registerer.Register(m.loadFailures),
		registerer.Register(m.loadDuration),
	)
	return m, errs.Err
}

type meteredLoader struct {
	loader  Loader
	metrics *metrics
}

// NewMetered returns a Loader that records prometheus metrics about every
// load performed by [loader].
func NewMetered(
	loader Loader,
	namespace string,
	registerer prometheus.Registerer,
) (Loader, error) {
	if registerer == nil {
		return nil, errors.New("nil registerer")
	}
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &meteredLoader{
		loader:  loader,
		metrics: m,
	}, nil
}

func (l *meteredLoader) Load(path string) (bytecode.ModuleGroup, error) {
	start := time.Now()
	group, err := l.loader.Load(path)
	l.metrics.loadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		l.metrics.loadFailures.Inc()
		return nil, err
	}
	l.metrics.modulesLoaded.Add(float64(len(group)))
	l.metrics.bytesLoaded.Add(float64(group.Size()))
	return group, nil
}
