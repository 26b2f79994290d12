// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of bench runs in a private
// registry.
type Metrics struct {
	reg *prometheus.Registry

	insts   *prometheus.CounterVec
	dur     prometheus.Histogram
	levels  prometheus.Histogram
	running prometheus.Gauge
}

// NewMetrics creates and registers the bench collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		insts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gplan_bench_instances_total",
			Help: "Instances run, by result",
		}, []string{"result"}),
		dur: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gplan_bench_instance_duration_seconds",
			Help:    "Duration of instance runs",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		levels: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gplan_bench_instance_levels",
			Help:    "Graph levels built per instance",
			Buckets: prometheus.LinearBuckets(1, 2, 12),
		}),
		running: f.NewGauge(prometheus.GaugeOpts{
			Name: "gplan_bench_running",
			Help: "Instances currently running",
		}),
	}
}

// Registry returns the registry of m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the metrics of m.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(ir *InstRun) {
	m.insts.WithLabelValues(ir.label()).Inc()
	m.dur.Observe(ir.Dur.Seconds())
	if !ir.Failed() {
		m.levels.Observe(float64(ir.Levels))
	}
}

// Serve serves m at addr under /metrics until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case e := <-errc:
		return e
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if e := srv.Shutdown(sctx); e != nil {
		return e
	}
	if e := <-errc; !errors.Is(e, http.ErrServerClosed) {
		return e
	}
	return nil
}
