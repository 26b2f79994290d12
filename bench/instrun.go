// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/pdef"
)

// InstRun is the outcome of solving one instance of a suite.
type InstRun struct {
	Inst     int           `yaml:"inst"`
	Path     string        `yaml:"path"`
	Name     string        `yaml:"name,omitempty"`
	Result   int           `yaml:"result"`
	Levels   int           `yaml:"levels"`
	Steps    int           `yaml:"steps"`
	Actions  int           `yaml:"actions"`
	Expanded int64         `yaml:"expanded"`
	Start    time.Time     `yaml:"start"`
	Dur      time.Duration `yaml:"dur"`
	Error    string        `yaml:"error,omitempty"`
}

// Failed reports whether the instance could not be run, as opposed to
// having run out of time or levels.
func (ir *InstRun) Failed() bool {
	return ir.Error != ""
}

// do reads and solves the instance under ctx, which carries the
// instance timeout.
func (ir *InstRun) do(ctx context.Context, opts ...gplan.Option) {
	ir.Start = time.Now()
	defer func() { ir.Dur = time.Since(ir.Start) }()
	p, e := pdef.ReadFile(ir.Path, opts...)
	if e != nil {
		ir.Error = e.Error()
		return
	}
	ir.Name = p.Name
	res, e := p.Solve(ctx)
	ir.Result = res
	st := p.Stats()
	ir.Levels = st.Levels
	ir.Expanded = st.Expanded
	if plan := p.Plan(); plan != nil {
		ir.Steps = len(plan)
		ir.Actions = plan.Len()
	}
	switch {
	case e == nil:
	case errors.Is(e, context.DeadlineExceeded), errors.Is(e, context.Canceled):
	case errors.Is(e, gplan.ErrMaxLevels):
	default:
		ir.Error = e.Error()
	}
}

// label names the outcome of ir for metrics.
func (ir *InstRun) label() string {
	switch {
	case ir.Failed() && ir.Result == 0:
		return "error"
	case ir.Result == 1:
		return "found"
	case ir.Result == -1:
		return "unsolvable"
	default:
		return "unknown"
	}
}
