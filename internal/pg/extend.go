// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/go-air/gplan/term"
)

// Extend adds one action level and one proposition level to g and
// computes their mutex relations.
//
// Every proposition of the last level is carried forward by a no-op, so
// a proposition present at level i is present at every level after i.
// Delete effects never create proposition nodes: an action is registered
// as a deleter only on nodes some action at its level adds.
func (g *Graph) Extend(ctx context.Context) error {
	lvl := len(g.props) - 1
	_, span := tracer.Start(ctx, "pg.Extend", trace.WithAttributes(attribute.Int("pg.level", lvl)))
	defer span.End()

	cur := g.props[lvl]
	nxt := newPLevel(len(cur.Nodes) + len(cur.Nodes)/2)
	al := &ALevel{Nodes: make([]ANode, 0, len(cur.Nodes)*2)}

	for i := range cur.Nodes {
		a := int32(len(al.Nodes))
		n := nxt.get(cur.Nodes[i].Prop)
		al.Nodes = append(al.Nodes, ANode{Pre: []int32{int32(i)}, Add: []int32{n}})
		cur.Nodes[i].Users = append(cur.Nodes[i].Users, a)
		nxt.Nodes[n].Adders = append(nxt.Nodes[n].Adders, a)
	}

	for _, o := range g.ops {
		for _, bp := range o.Bindprops(g.insts, g.Tab, cur) {
			a := int32(len(al.Nodes))
			an := ANode{Op: o, Subst: bp.Subst, Pre: bp.Nodes}
			for _, l := range o.Add {
				p, e := g.Tab.Instantiate(l, bp.Subst)
				if e != nil {
					return fmt.Errorf("level %d: %s: %w", lvl, o.Name, e)
				}
				n := nxt.get(p)
				if has(an.Add, n) {
					continue
				}
				an.Add = append(an.Add, n)
				nxt.Nodes[n].Adders = append(nxt.Nodes[n].Adders, a)
			}
			for _, l := range o.Del {
				p, e := g.Tab.Instantiate(l, bp.Subst)
				if e != nil {
					return fmt.Errorf("level %d: %s: %w", lvl, o.Name, e)
				}
				if !hasProp(an.dels, p) {
					an.dels = append(an.dels, p)
				}
			}
			for _, n := range bp.Nodes {
				cur.Nodes[n].Users = append(cur.Nodes[n].Users, a)
			}
			al.Nodes = append(al.Nodes, an)
		}
	}

	for a := range al.Nodes {
		an := &al.Nodes[a]
		for _, p := range an.dels {
			n, ok := nxt.idx[p]
			if !ok {
				continue
			}
			an.Del = append(an.Del, n)
			nxt.Nodes[n].Deleters = append(nxt.Nodes[n].Deleters, int32(a))
		}
	}
	nxt.seal()

	g.acts = append(g.acts, al)
	g.props = append(g.props, nxt)
	g.nogoods = append(g.nogoods, make(map[string]struct{}))

	g.actionMutex(lvl)
	g.propMutex(lvl + 1)

	span.SetAttributes(
		attribute.Int("pg.actions", len(al.Nodes)),
		attribute.Int("pg.props", len(nxt.Nodes)),
		attribute.Int("pg.prop_mutex", nxt.nMutex))
	g.log.Debug("extend",
		zap.Int("level", lvl+1),
		zap.Int("actions", len(al.Nodes)),
		zap.Int("actionMutex", al.nMutex),
		zap.Int("props", len(nxt.Nodes)),
		zap.Int("propMutex", nxt.nMutex))
	return nil
}

func has(ns []int32, n int32) bool {
	for _, m := range ns {
		if m == n {
			return true
		}
	}
	return false
}

func hasProp(ps []term.Prop, p term.Prop) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
