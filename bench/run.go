// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/go-air/gplan"
)

// Config parameterizes a Run.
type Config struct {
	Name        string
	Desc        string
	Jobs        int           // concurrent instances; <= 0 means GOMAXPROCS
	Timeout     time.Duration // whole run; 0 means none
	InstTimeout time.Duration // each instance; 0 means none
	MaxLevels   int
	Log         *zap.Logger
	Metrics     *Metrics
}

// Run describes a run of the planner on a Suite.
type Run struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Desc        string        `yaml:"desc,omitempty"`
	Suite       *Suite        `yaml:"suite"`
	Arch        string        `yaml:"arch"`
	Os          string        `yaml:"os"`
	NumCPU      int           `yaml:"numcpu"`
	Jobs        int           `yaml:"jobs"`
	Start       time.Time     `yaml:"start"`
	Dur         time.Duration `yaml:"dur"`
	Timeout     time.Duration `yaml:"timeout"`
	InstTimeout time.Duration `yaml:"inst_timeout"`
	MaxLevels   int           `yaml:"max_levels,omitempty"`
	InstRuns    []*InstRun    `yaml:"insts"`

	log *zap.Logger
	m   *Metrics
}

// NewRun creates a run of the instances of s configured by c.
func NewRun(s *Suite, c Config) *Run {
	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	id := uuid.NewString()
	name := c.Name
	if name == "" {
		name = id[:8]
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	r := &Run{
		ID:          id,
		Name:        name,
		Desc:        c.Desc,
		Suite:       s,
		Arch:        runtime.GOARCH,
		Os:          runtime.GOOS,
		NumCPU:      runtime.NumCPU(),
		Jobs:        jobs,
		Timeout:     c.Timeout,
		InstTimeout: c.InstTimeout,
		MaxLevels:   c.MaxLevels,
		InstRuns:    make([]*InstRun, len(s.Insts)),
		log:         log.With(zap.String("run", id)),
		m:           c.Metrics}
	for i, p := range s.Insts {
		r.InstRuns[i] = &InstRun{Inst: i, Path: p}
	}
	return r
}

// Do solves all instances of r.  Instances which have not started when
// the global timeout expires are recorded as unknown.  Instance failures
// are recorded in the instance runs; Do only returns an error if ctx
// itself is done.
func (r *Run) Do(ctx context.Context) error {
	r.Start = time.Now()
	gctx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		gctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	r.log.Info("run start",
		zap.String("name", r.Name),
		zap.Int("insts", len(r.InstRuns)),
		zap.Int("jobs", r.Jobs))

	var g errgroup.Group
	g.SetLimit(r.Jobs)
	for _, ir := range r.InstRuns {
		g.Go(func() error {
			r.inst(gctx, ir)
			return nil
		})
	}
	_ = g.Wait()
	r.Dur = time.Since(r.Start)

	r.log.Info("run done",
		zap.Int("found", FoundTotal(r)),
		zap.Int("unsolvable", UnsolvableTotal(r)),
		zap.Int("unknown", UnknownTotal(r)),
		zap.Int("errors", ErrorTotal(r)),
		zap.Duration("duration", r.Dur))
	return ctx.Err()
}

func (r *Run) inst(ctx context.Context, ir *InstRun) {
	if ctx.Err() != nil {
		ir.Start = time.Now()
		return
	}
	if r.InstTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.InstTimeout)
		defer cancel()
	}
	if r.m != nil {
		r.m.running.Inc()
		defer r.m.running.Dec()
	}
	ir.do(ctx,
		gplan.WithLogger(r.log.With(zap.Int("inst", ir.Inst))),
		gplan.WithMaxLevels(r.MaxLevels))
	if r.m != nil {
		r.m.observe(ir)
	}
	r.log.Debug("inst",
		zap.String("path", ir.Path),
		zap.Int("result", ir.Result),
		zap.Int("levels", ir.Levels),
		zap.Int("steps", ir.Steps),
		zap.Duration("duration", ir.Dur),
		zap.String("error", ir.Error))
}

// Write writes r to w as YAML.
func (r *Run) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if e := enc.Encode(r); e != nil {
		return e
	}
	return enc.Close()
}

// WriteFile writes r to the file path.
func (r *Run) WriteFile(path string) (err error) {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return r.Write(f)
}

// ReadRun reads a run written by Write.
func ReadRun(rd io.Reader) (*Run, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	r := &Run{}
	if e := dec.Decode(r); e != nil {
		return nil, fmt.Errorf("read run: %w", e)
	}
	r.log = zap.NewNop()
	return r, nil
}

// ReadRunFile reads a run from the file path.
func ReadRunFile(path string) (*Run, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()
	return ReadRun(f)
}
