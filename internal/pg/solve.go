// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/go-air/gplan/inter"
	"github.com/go-air/gplan/term"
)

// Result codes.
const (
	Found      = inter.Found
	Unknown    = inter.Unknown
	Unsolvable = inter.Unsolvable
)

// ErrMaxLevels is returned when the level limit is reached before the
// search is conclusive.
var ErrMaxLevels = errors.New("level limit reached")

// Solve extends g until the goal propositions are reachable by a plan,
// or until no plan can exist.  It returns Found with the selected action
// nodes per action level, Unsolvable, or Unknown with the error which
// interrupted the search: ctx.Err() or ErrMaxLevels.  maxLevels <= 0
// means no limit.
//
// Goals holding at level 0 yield Found with an empty plan.
func (g *Graph) Solve(ctx context.Context, goals []term.Prop, maxLevels int, st *Stats) (res int, plan [][]int32, err error) {
	if st == nil {
		st = &Stats{}
	}
	ctx, span := tracer.Start(ctx, "pg.Solve")
	start := time.Now()
	defer func() {
		st.Duration = time.Since(start)
		st.Levels = g.Depth()
		span.SetAttributes(
			attribute.Int("pg.result", res),
			attribute.Int("pg.levels", st.Levels),
			attribute.Int64("pg.expanded", st.Expanded))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		recordSolve(ctx, res, st)
	}()

	fp := newFixpoint()
	for {
		d := g.Depth()
		ns, ok := g.Goals(goals)
		switch {
		case !ok:
			g.log.Debug("goals not reached", zap.Int("level", d))
		case g.AnyMutex(ns):
			g.log.Debug("goals mutex", zap.Int("level", d))
		default:
			st.Attempts++
			plan, found, e := g.extract(ctx, ns, st)
			if e != nil {
				return Unknown, nil, e
			}
			if found {
				g.log.Debug("plan found", zap.Int("level", d))
				return Found, plan, nil
			}
			g.log.Debug("no plan at level", zap.Int("level", d), zap.Int("nogoods", g.nogoodTotal()))
		}
		if fp.done(g) {
			g.log.Debug("leveled off", zap.Int("level", d), zap.Int("fixLevel", fp.lvl))
			return Unsolvable, nil, nil
		}
		if e := ctx.Err(); e != nil {
			return Unknown, nil, e
		}
		if maxLevels > 0 && d >= maxLevels {
			return Unknown, nil, ErrMaxLevels
		}
		if e := g.Extend(ctx); e != nil {
			return Unknown, nil, e
		}
	}
}

func (g *Graph) extract(ctx context.Context, ns []int32, st *Stats) ([][]int32, bool, error) {
	ctx, span := tracer.Start(ctx, "pg.Extract")
	defer span.End()
	span.SetAttributes(attribute.Int("pg.level", g.Depth()), attribute.Int("pg.goals", len(ns)))
	return g.Extract(ctx, ns, st)
}

func (g *Graph) nogoodTotal() int {
	n := 0
	for _, m := range g.nogoods {
		n += len(m)
	}
	return n
}
