// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gplan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/go-air/gplan/inter"
	"github.com/go-air/gplan/internal/pg"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

var (
	// ErrNotGround is returned for initial or goal literals with
	// placeholders.
	ErrNotGround = term.ErrNotGround
	// ErrNoInstances is returned when an operator parameter has a type
	// with no objects.
	ErrNoInstances = errors.New("no objects of parameter type")
	// ErrNotNumeric is returned when an ordering or arithmetic builtin
	// ranges over objects without comparable keys.
	ErrNotNumeric = errors.New("builtin over objects without comparable keys")
	// ErrSolved is returned when a Problem is solved a second time.
	ErrSolved = errors.New("problem already solved")
	// ErrMaxLevels is returned when the level limit is reached first.
	ErrMaxLevels = pg.ErrMaxLevels
)

// Stats holds counters of a solve.
type Stats = pg.Stats

var _ inter.Planner = (*Problem)(nil)

// Problem is a planning problem.
type Problem struct {
	Name    string
	Objects []term.Object
	Ops     []*op.Op
	Init    []term.Literal
	Goals   []term.Literal

	insts     map[string][]term.Object
	log       *zap.Logger
	maxLevels int

	mu      sync.Mutex
	started bool
	done    bool
	g       *pg.Graph
	plan    Plan
	stats   Stats
}

// New creates a problem.  New checks that init and goals are ground,
// that every operator parameter type has objects and that builtins
// requiring ordered keys range over comparable objects.
func New(name string, objects []term.Object, ops []*op.Op, init, goals []term.Literal, opts ...Option) (*Problem, error) {
	p := &Problem{
		Name:    name,
		Objects: objects,
		Ops:     ops,
		Init:    init,
		Goals:   goals,
		insts:   make(map[string][]term.Object),
		log:     zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	seen := make(map[term.Object]bool, len(objects))
	for _, o := range objects {
		if o.Name() == "" || o.Type() == "" {
			return nil, fmt.Errorf("problem %s: object %q: %w", name, o.Name(), term.ErrArg)
		}
		if seen[o] {
			continue
		}
		seen[o] = true
		p.insts[o.Type()] = append(p.insts[o.Type()], o)
	}
	for _, o := range ops {
		if e := p.checkOp(o); e != nil {
			return nil, fmt.Errorf("problem %s: %w", name, e)
		}
	}
	if e := checkGround("init", init); e != nil {
		return nil, fmt.Errorf("problem %s: %w", name, e)
	}
	if e := checkGround("goal", goals); e != nil {
		return nil, fmt.Errorf("problem %s: %w", name, e)
	}
	return p, nil
}

func (p *Problem) checkOp(o *op.Op) error {
	for _, v := range o.Params {
		if len(p.insts[v.Type()]) == 0 {
			return fmt.Errorf("op %s: %s: %w %q", o.Name, v, ErrNoInstances, v.Type())
		}
	}
	for _, l := range o.Builtins() {
		if !op.IsNumeric(l.Pred) {
			continue
		}
		var nums, syms int
		for _, a := range l.Args {
			dom := []term.Object{}
			switch a := a.(type) {
			case term.Placeholder:
				dom = p.insts[a.Type()]
			case term.Object:
				dom = append(dom, a)
			}
			for _, x := range dom {
				if _, ok := x.Num(); ok {
					nums++
				} else {
					syms++
				}
			}
		}
		if syms != 0 && (nums != 0 || l.Pred == op.Sum) {
			return fmt.Errorf("op %s: %s: %w", o.Name, l, ErrNotNumeric)
		}
	}
	return nil
}

func checkGround(what string, ls []term.Literal) error {
	for i, l := range ls {
		if e := l.Check(); e != nil {
			return fmt.Errorf("%s[%d]: %w", what, i, e)
		}
		if !l.IsGround() {
			return fmt.Errorf("%s[%d]: %s: %w", what, i, l, ErrNotGround)
		}
		if op.IsBuiltin(l.Pred) {
			return fmt.Errorf("%s[%d]: %s: %w", what, i, l, op.ErrBuiltin)
		}
	}
	return nil
}

// Solve searches for a plan.  It returns 1 if a plan was found, -1 if
// no plan exists, and 0 together with the cause if ctx was done or the
// level limit was reached first.  The graph built so far remains
// readable with Graph in every case.
//
// Solve may be called once; later calls return ErrSolved.
func (p *Problem) Solve(ctx context.Context) (int, error) {
	if e := p.start(); e != nil {
		return inter.Unknown, e
	}
	return p.run(ctx)
}

// GoSolve starts Solve in its own goroutine and returns a handle on it.
func (p *Problem) GoSolve() (inter.Solve, error) {
	if e := p.start(); e != nil {
		return nil, e
	}
	return pg.Go(context.Background(), p.run), nil
}

func (p *Problem) start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return ErrSolved
	}
	p.started = true
	return nil
}

func (p *Problem) run(ctx context.Context) (int, error) {
	tab := term.NewTable()
	init := make([]term.Prop, 0, len(p.Init))
	for _, l := range p.Init {
		q, e := tab.Intern(l)
		if e != nil {
			return inter.Unknown, e
		}
		init = append(init, q)
	}
	goals := make([]term.Prop, 0, len(p.Goals))
	for _, l := range p.Goals {
		q, e := tab.Intern(l)
		if e != nil {
			return inter.Unknown, e
		}
		goals = append(goals, q)
	}
	log := p.log.With(zap.String("problem", p.Name))
	g := pg.New(tab, p.Ops, p.insts, init, log)
	st := Stats{}
	res, acts, err := g.Solve(ctx, goals, p.maxLevels, &st)

	var plan Plan
	if res == inter.Found {
		plan = toPlan(g, acts)
	}
	p.mu.Lock()
	p.g, p.plan, p.stats, p.done = g, plan, st, true
	p.mu.Unlock()

	log.Info("solved",
		zap.Int("result", res),
		zap.Int("levels", st.Levels),
		zap.Int("steps", len(plan)),
		zap.Int64("expanded", st.Expanded),
		zap.Duration("duration", st.Duration),
		zap.Error(err))
	return res, err
}

func toPlan(g *pg.Graph, acts [][]int32) Plan {
	plan := make(Plan, len(acts))
	for i, lvl := range acts {
		step := Step{}
		al := g.Acts(i)
		for _, a := range lvl {
			n := &al.Nodes[a]
			if n.IsNoop() {
				continue
			}
			step = append(step, Action{Op: n.Op, Subst: n.Subst})
		}
		plan[i] = step
	}
	return plan
}

// Plan returns the plan found by Solve, or nil if there is none (yet).
// A problem whose goals hold initially has an empty, non-nil plan.
func (p *Problem) Plan() Plan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plan
}

// Stats returns the counters of the finished solve.
func (p *Problem) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Graph returns the planning graph of the finished solve, or nil before
// the solve has finished.
func (p *Problem) Graph() inter.Graph {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.done {
		return nil
	}
	return &graph{g: p.g}
}
