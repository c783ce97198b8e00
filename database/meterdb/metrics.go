// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const methodLabel = "method"

var (
	methodLabels = []string{methodLabel}

	has         = metricLabels("has")
	get         = metricLabels("get")
	put         = metricLabels("put")
	del         = metricLabels("delete")
	newIterator = metricLabels("new_iterator")
	closeMethod = metricLabels("close")
	iNext       = metricLabels("iterator_next")
	iError      = metricLabels("iterator_error")
	iKey        = metricLabels("iterator_key")
	iValue      = metricLabels("iterator_value")
	iRelease    = metricLabels("iterator_release")

	allMethods = []prometheus.Labels{
		has,
		get,
		put,
		del,
		newIterator,
		closeMethod,
		iNext,
		iError,
		iKey,
		iValue,
		iRelease,
	}
)

func metricLabels(method string) prometheus.Labels {
	return prometheus.Labels{
		methodLabel: method,
	}
}

type metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.GaugeVec
	size     *prometheus.CounterVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_calls",
				Help:      "number of calls to the database",
			},
			methodLabels,
		),
		duration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_duration",
				Help:      "time spent in database calls (ns)",
			},
			methodLabels,
		),
		size: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_size",
				Help:      "size of data passed in database calls",
			},
			methodLabels,
		),
	}
	for _, method := range allMethods {
		m.calls.With(method)
		m.duration.With(method)
		m.size.With(method)
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration, m.size} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(method prometheus.Labels, start time.Time, size int) {
	m.calls.With(method).Inc()
	m.duration.With(method).Add(float64(time.Since(start)))
	if size > 0 {
		m.size.With(method).Add(float64(size))
	}
}
