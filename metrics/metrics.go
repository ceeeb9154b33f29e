// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

// Package metrics counts what the ingestion pipeline does. Counters live in
// their own registry and can be flushed to a Prometheus textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gopm"

type Metrics struct {
	Frames          prometheus.Counter
	Rejected        prometheus.Counter
	Duplicates      prometheus.Counter
	Persisted       prometheus.Counter
	ReadErrors      prometheus.Counter
	ConnectFailures prometheus.Counter
	MirrorErrors    prometheus.Counter

	registry *prometheus.Registry
}

func New() *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}
	m := &Metrics{
		Frames:          counter("frames_total", "Frames read from the device."),
		Rejected:        counter("frames_rejected_total", "Frames dropped as malformed."),
		Duplicates:      counter("records_duplicate_total", "Records dropped because their second was already stored."),
		Persisted:       counter("records_persisted_total", "Records appended to the daily file."),
		ReadErrors:      counter("read_errors_total", "Device read failures."),
		ConnectFailures: counter("connect_failures_total", "Failed attempts to open the device."),
		MirrorErrors:    counter("mirror_errors_total", "Records a secondary sink failed to accept."),
		registry:        prometheus.NewRegistry(),
	}
	m.registry.MustRegister(
		m.Frames,
		m.Rejected,
		m.Duplicates,
		m.Persisted,
		m.ReadErrors,
		m.ConnectFailures,
		m.MirrorErrors,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all counters to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
