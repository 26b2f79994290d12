// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/gen"
	"github.com/go-air/gplan/inter"
	"github.com/go-air/gplan/pdef"
)

// problemFlags select and bound the problem of solve and dump.
type problemFlags struct {
	gen       string
	maxLevels int
	timeout   time.Duration
}

func (pf *problemFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&pf.gen, "gen", "", "solve the named generated problem instead of a file")
	fs.IntVar(&pf.maxLevels, "max-levels", 0, "bound the number of graph levels (0: none)")
	fs.DurationVar(&pf.timeout, "timeout", 0, "give up after this long (0: none)")
}

// load returns the problem named by pf or args, with the settings of the
// config file unless overridden by flags.
func (a *app) load(cmd *cobra.Command, pf *problemFlags, args []string) (*gplan.Problem, time.Duration, error) {
	maxLevels, timeout := a.cfg.MaxLevels, a.cfg.Timeout
	if cmd.Flags().Changed("max-levels") {
		maxLevels = pf.maxLevels
	}
	if cmd.Flags().Changed("timeout") {
		timeout = pf.timeout
	}
	opts := []gplan.Option{gplan.WithLogger(a.log), gplan.WithMaxLevels(maxLevels)}
	switch {
	case pf.gen != "" && len(args) > 0:
		return nil, 0, errors.New("give either --gen or a file, not both")
	case pf.gen != "":
		g, ok := gen.Lookup(pf.gen)
		if !ok {
			return nil, 0, fmt.Errorf("unknown generator %q, have %v", pf.gen, gen.Names())
		}
		return g(opts...), timeout, nil
	case len(args) == 0 || args[0] == "-":
		p, e := pdef.Read(cmd.InOrStdin(), opts...)
		return p, timeout, e
	default:
		p, e := pdef.ReadFile(args[0], opts...)
		return p, timeout, e
	}
}

func (a *app) solveCmd() *cobra.Command {
	pf := &problemFlags{}
	var (
		stats    bool
		mon      time.Duration
		exitCode bool
		check    bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "solve a problem file, - or no file for stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, timeout, e := a.load(cmd, pf, args)
			if e != nil {
				return e
			}
			s, e := p.GoSolve()
			if e != nil {
				return e
			}
			out := cmd.OutOrStdout()
			res := monitor(cmd.Context(), s, timeout, mon, out, p)
			if e := s.Err(); e != nil && res == inter.Unknown {
				a.log.Info("no result", zap.Error(e))
			}
			fmt.Fprintf(out, "s %s\n", resultName(res))
			if plan := p.Plan(); plan != nil {
				fmt.Fprint(out, plan)
				if check {
					if e := plan.Check(p.Init, p.Goals); e != nil {
						return e
					}
				}
			}
			if stats {
				writeStats(out, p.Stats())
			}
			if exitCode {
				a.code = resultCode(res)
			}
			return nil
		},
	}
	pf.register(cmd)
	fs := cmd.Flags()
	fs.BoolVar(&stats, "stats", false, "print statistics after solving")
	fs.DurationVar(&mon, "mon", 0, "if non-zero, report progress at this interval")
	fs.BoolVar(&exitCode, "exit-code", false, "exit 10 if a plan is found, 20 if there is none")
	fs.BoolVar(&check, "check", false, "replay the plan and fail if it is invalid")
	return cmd
}

// monitor waits for s, stopping it when ctx is done or timeout elapses,
// and reports progress every mon if mon is non-zero.
func monitor(ctx context.Context, s inter.Solve, timeout, mon time.Duration, w io.Writer, p *gplan.Problem) int {
	done := make(chan int, 1)
	go func() { done <- s.Wait() }()
	var deadline, tick <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		deadline = t.C
	}
	if mon > 0 {
		t := time.NewTicker(mon)
		defer t.Stop()
		tick = t.C
	}
	start := time.Now()
	for {
		select {
		case res := <-done:
			return res
		case <-ctx.Done():
			s.Stop()
			return <-done
		case <-deadline:
			s.Stop()
			return <-done
		case <-tick:
			fmt.Fprintf(w, "c %s running %s\n", p.Name, time.Since(start).Round(time.Millisecond))
		}
	}
}

func resultName(res int) string {
	switch res {
	case inter.Found:
		return "FOUND"
	case inter.Unsolvable:
		return "UNSOLVABLE"
	default:
		return "UNKNOWN"
	}
}

func resultCode(res int) int {
	switch res {
	case inter.Found:
		return 10
	case inter.Unsolvable:
		return 20
	default:
		return 0
	}
}

func writeStats(w io.Writer, st gplan.Stats) {
	fmt.Fprintf(w, "c levels      %d\n", st.Levels)
	fmt.Fprintf(w, "c attempts    %d\n", st.Attempts)
	fmt.Fprintf(w, "c expanded    %d\n", st.Expanded)
	fmt.Fprintf(w, "c memo hits   %d\n", st.MemoHits)
	fmt.Fprintf(w, "c memo writes %d\n", st.MemoWrites)
	fmt.Fprintf(w, "c duration    %s\n", st.Duration)
}

func (a *app) dumpCmd() *cobra.Command {
	pf := &problemFlags{}
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "solve a problem and print its planning graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, timeout, e := a.load(cmd, pf, args)
			if e != nil {
				return e
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			res, e := p.Solve(ctx)
			if e != nil && p.Graph() == nil {
				return e
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "s %s\n", resultName(res))
			return p.Dump(out)
		},
	}
	pf.register(cmd)
	return cmd
}
