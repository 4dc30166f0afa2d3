// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by an Engine.
type Metrics struct {
	// Records counts every record evaluated, valid or not.
	Records prometheus.Counter
	// InvalidRecords counts records rejected by validation.
	InvalidRecords prometheus.Counter
	// OverlapSeconds records the overlap total of every valid record.
	OverlapSeconds prometheus.Histogram
}

// NewMetrics creates the collectors, named under the given namespace. The
// collectors are not registered; see Register.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Number of presence records evaluated.",
		}),
		InvalidRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_records_total",
			Help:      "Number of presence records rejected by validation.",
		}),
		OverlapSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overlap_seconds",
			Help:      "Simultaneous presence of pupil and tutor per lesson.",
			// 1 minute to ~4 hours.
			Buckets: prometheus.ExponentialBuckets(60, 2, 9),
		}),
	}
}

// Collectors returns the collectors in m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Records, m.InvalidRecords, m.OverlapSeconds}
}

// Register registers all the collectors with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := r.Register(c); err != nil {
			return errors.Wrap(err, "registering appearance metrics")
		}
	}
	return nil
}

func (m *Metrics) observe(total int64, err error) {
	if m == nil {
		return
	}
	m.Records.Inc()
	if err != nil {
		if IsValidationError(err) {
			m.InvalidRecords.Inc()
		}
		return
	}
	m.OverlapSeconds.Observe(float64(total))
}
