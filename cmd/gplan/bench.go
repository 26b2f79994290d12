// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-air/gplan/bench"
)

func (a *app) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run and compare benchmarks over suites of problem files",
	}
	cmd.AddCommand(a.benchRunCmd(), a.benchCmpCmd())
	return cmd
}

func (a *app) benchRunCmd() *cobra.Command {
	var (
		pattern string
		n       int
		name    string
		desc    string
		outPath string
		c       BenchConfig
	)
	cmd := &cobra.Command{
		Use:   "run [flags] dir [dir ...]",
		Short: "solve the problem files under dirs, enforcing timeouts and recording results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			bc := a.cfg.Bench
			if fs.Changed("jobs") {
				bc.Jobs = c.Jobs
			}
			if fs.Changed("inst-timeout") {
				bc.InstTimeout = c.InstTimeout
			}
			if fs.Changed("timeout") {
				bc.Timeout = c.Timeout
			}
			if fs.Changed("metrics-addr") {
				bc.MetricsAddr = c.MetricsAddr
			}
			s, e := bench.OpenSuite(pattern, n, args...)
			if e != nil {
				return e
			}
			m := bench.NewMetrics()
			r := bench.NewRun(s, bench.Config{
				Name:        name,
				Desc:        desc,
				Jobs:        bc.Jobs,
				Timeout:     bc.Timeout,
				InstTimeout: bc.InstTimeout,
				MaxLevels:   a.cfg.MaxLevels,
				Log:         a.log,
				Metrics:     m})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			var g errgroup.Group
			if bc.MetricsAddr != "" {
				a.log.Info("serving metrics", zap.String("addr", bc.MetricsAddr))
				g.Go(func() error { return m.Serve(ctx, bc.MetricsAddr) })
			}
			g.Go(func() error {
				defer cancel()
				return r.Do(ctx)
			})
			if e := g.Wait(); e != nil && !errors.Is(e, context.Canceled) {
				return e
			}
			fmt.Fprintln(cmd.OutOrStdout(), bench.Summary(r))
			if outPath != "" {
				return r.WriteFile(outPath)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&pattern, "pattern", "*.yaml*", "select files matching this pattern")
	fs.IntVarP(&n, "count", "n", 0, "select at most this many files at random (0: all)")
	fs.StringVar(&name, "name", "", "name of the run (default: prefix of the run id)")
	fs.StringVar(&desc, "desc", "", "description of the run")
	fs.StringVarP(&outPath, "out", "o", "", "write the run results to this YAML file")
	fs.IntVar(&c.Jobs, "jobs", 0, "instances solved concurrently (0: GOMAXPROCS)")
	fs.DurationVar(&c.InstTimeout, "inst-timeout", 0, "max per-instance duration")
	fs.DurationVar(&c.Timeout, "timeout", 0, "max run duration")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", "", "serve prometheus metrics at this address")
	return cmd
}

func (a *app) benchCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp a.yaml b.yaml",
		Short: "compare the results of two runs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ra, e := bench.ReadRunFile(args[0])
			if e != nil {
				return e
			}
			rb, e := bench.ReadRunFile(args[1])
			if e != nil {
				return e
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, bench.Summary(ra))
			fmt.Fprintln(out, bench.Summary(rb))
			for _, d := range bench.Compare(ra, rb) {
				fmt.Fprintf(out, "%s: %s %d (%s) %s %d (%s)\n", d.Path,
					ra.Name, d.A.Result, d.A.Dur, rb.Name, d.B.Result, d.B.Dur)
			}
			return nil
		},
	}
}
