// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("gplan.pg")
	meter  = otel.Meter("gplan.pg")
)

var (
	solveLatency metric.Float64Histogram
	solveTotal   metric.Int64Counter
	levelsBuilt  metric.Int64Counter
	expanded     metric.Int64Counter
	memoHits     metric.Int64Counter
	memoWrites   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		solveLatency, err = meter.Float64Histogram(
			"gplan_solve_duration_seconds",
			metric.WithDescription("Duration of solve calls"),
			metric.WithUnit("s"))
		if err != nil {
			metricsErr = err
			return
		}
		solveTotal, err = meter.Int64Counter(
			"gplan_solve_total",
			metric.WithDescription("Solve calls by result"))
		if err != nil {
			metricsErr = err
			return
		}
		levelsBuilt, err = meter.Int64Counter(
			"gplan_levels_total",
			metric.WithDescription("Planning graph levels built"))
		if err != nil {
			metricsErr = err
			return
		}
		expanded, err = meter.Int64Counter(
			"gplan_extract_nodes_total",
			metric.WithDescription("Backward search nodes expanded"))
		if err != nil {
			metricsErr = err
			return
		}
		memoHits, err = meter.Int64Counter(
			"gplan_nogood_hits_total",
			metric.WithDescription("Goal sets rejected by the nogood table"))
		if err != nil {
			metricsErr = err
			return
		}
		memoWrites, err = meter.Int64Counter(
			"gplan_nogood_writes_total",
			metric.WithDescription("Goal sets recorded in the nogood table"))
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordSolve(ctx context.Context, res int, st *Stats) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Int("result", res))
	solveLatency.Record(ctx, st.Duration.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)
	levelsBuilt.Add(ctx, int64(st.Levels))
	expanded.Add(ctx, st.Expanded)
	memoHits.Add(ctx, st.MemoHits)
	memoWrites.Add(ctx, st.MemoWrites)
}

// Type Stats holds counters of one solve call.
type Stats struct {
	Levels     int   // proposition levels beyond level 0
	Attempts   int   // extraction attempts
	Expanded   int64 // backward search nodes
	MemoHits   int64
	MemoWrites int64
	Duration   time.Duration
}
