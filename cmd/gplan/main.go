// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command gplan solves planning problems with planning graphs.
//
//	gplan solve [flags] [file]     solve a problem file or a generated problem
//	gplan dump [flags] [file]      solve and print the planning graph
//	gplan gen [flags] [name ...]   write generated problems as problem files
//	gplan bench run [flags] dir... solve suites of problem files
//	gplan bench cmp a.yaml b.yaml  compare two bench runs
//
// For help with a command, run gplan <cmd> -h.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type app struct {
	cfgPath string
	verbose bool
	trace   bool

	cfg  Config
	log  *zap.Logger
	tp   *sdktrace.TracerProvider
	code int
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "gplan",
		Short:             "gplan solves STRIPS planning problems with planning graphs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "read settings from this YAML file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	pf.BoolVar(&a.trace, "trace", false, "write otel spans to stderr")

	root.AddCommand(a.solveCmd(), a.dumpCmd(), a.genCmd(), a.benchCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.cfgPath != "" {
		c, e := LoadConfig(a.cfgPath)
		if e != nil {
			return e
		}
		a.cfg = c
	}
	zc := zap.NewProductionConfig()
	if a.verbose {
		zc = zap.NewDevelopmentConfig()
	} else {
		lvl, e := zap.ParseAtomicLevel(a.cfg.LogLevel)
		if e != nil {
			return fmt.Errorf("log_level: %w", e)
		}
		zc.Level = lvl
	}
	log, e := zc.Build()
	if e != nil {
		return e
	}
	a.log = log

	if a.trace {
		exp, e := stdouttrace.New(
			stdouttrace.WithWriter(cmd.ErrOrStderr()),
			stdouttrace.WithPrettyPrint())
		if e != nil {
			return fmt.Errorf("trace exporter: %w", e)
		}
		a.tp = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		otel.SetTracerProvider(a.tp)
	}
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	_ = a.log.Sync()
	if a.tp == nil {
		return nil
	}
	return a.tp.Shutdown(context.WithoutCancel(ctx))
}

// run executes the command line args and returns the exit code.
func run(ctx context.Context, args []string, out, errw io.Writer) int {
	a := &app{cfg: DefaultConfig(), log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errw)
	e := root.ExecuteContext(ctx)
	if te := a.teardown(ctx); e == nil {
		e = te
	}
	if e != nil {
		fmt.Fprintf(errw, "gplan: %s\n", e)
		return 1
	}
	return a.code
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
