// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package op

import (
	"iter"

	"github.com/go-air/gplan/term"
)

// Interface PropLevel is a proposition level of a planning graph, as seen
// by Bindprops.
type PropLevel interface {
	// Node returns the index of the node of p at this level.
	Node(p term.Prop) (int32, bool)
	// Mutex returns whether the nodes i and j are mutex.
	Mutex(i, j int32) bool
}

// Type Bindprop is a grounding of an operator together with the nodes of
// the proposition level which support its preconditions.
type Bindprop struct {
	Subst term.Subst
	Nodes []int32 // distinct, in precondition order
}

// Bindings returns the sequence of all substitutions for the parameters
// of o using objects from insts, keyed by type, under which every builtin
// precondition of o holds.
//
// Parameters are bound one at a time in order; a partial binding is
// dropped as soon as a builtin whose arguments it determines fails.  Each
// yielded Subst is fresh and may be retained.
func (o *Op) Bindings(insts map[string][]term.Object) iter.Seq[term.Subst] {
	return func(yield func(term.Subst) bool) {
		g := o.newGen(insts, nil)
		g.run(func(cur []term.Object) bool {
			return yield(o.subst(cur))
		})
	}
}

// Bindprops returns the groundings of o whose propositional
// preconditions all have nodes in lvl and whose supporting nodes are
// pairwise non-mutex.  tab is used to look up ground preconditions; it is
// not modified.
func (o *Op) Bindprops(insts map[string][]term.Object, tab *term.Table, lvl PropLevel) []Bindprop {
	var res []Bindprop
	nodes := make([]int32, len(o.conds))
	chk := func(c *cLit, k int, cur []term.Object) bool {
		p, ok := tab.Lookup(c.ground(cur))
		if !ok {
			return false
		}
		n, ok := lvl.Node(p)
		if !ok {
			return false
		}
		nodes[k] = n
		return true
	}
	g := o.newGen(insts, chk)
	g.run(func(cur []term.Object) bool {
		ns := make([]int32, 0, len(nodes))
	outer:
		for _, n := range nodes {
			for _, m := range ns {
				if m == n {
					continue outer
				}
			}
			ns = append(ns, n)
		}
		for i, n := range ns {
			for _, m := range ns[i+1:] {
				if lvl.Mutex(n, m) {
					return true
				}
			}
		}
		res = append(res, Bindprop{Subst: o.subst(cur), Nodes: ns})
		return true
	})
	return res
}

func (o *Op) subst(cur []term.Object) term.Subst {
	b := make(term.Subst, len(cur))
	for i, v := range o.Params {
		b[v] = cur[i]
	}
	return b
}

// ground returns c under the (possibly partial) binding cur.  Every
// parameter c mentions must be bound.
func (c *cLit) ground(cur []term.Object) term.Literal {
	args := make([]term.Arg, len(c.pos))
	for i, j := range c.pos {
		if j < 0 {
			args[i] = c.lit.Args[i]
			continue
		}
		args[i] = cur[j]
	}
	return term.Literal{Pred: c.lit.Pred, Args: args, Neg: c.lit.Neg}
}

func (c *cLit) holds(cur []term.Object, buf []term.Object) bool {
	buf = buf[:0]
	for i, j := range c.pos {
		if j < 0 {
			buf = append(buf, c.lit.Args[i].(term.Object))
			continue
		}
		buf = append(buf, cur[j])
	}
	return eval(c.lit.Pred, c.lit.Neg, buf)
}

// Type gen enumerates bindings depth first.  Builtins and, if chk is
// non-nil, conditions are checked at the first depth at which all their
// arguments are bound.
type gen struct {
	o     *Op
	doms  [][]term.Object
	cur   []term.Object
	bAt   [][]int // builtins indexed by depth+1
	cAt   [][]int // conds indexed by depth+1
	chk   func(c *cLit, k int, cur []term.Object) bool
	buf   []term.Object
	empty bool
}

func (o *Op) newGen(insts map[string][]term.Object, chk func(*cLit, int, []term.Object) bool) *gen {
	n := len(o.Params)
	g := &gen{
		o:    o,
		doms: make([][]term.Object, n),
		cur:  make([]term.Object, n),
		bAt:  make([][]int, n+1),
		cAt:  make([][]int, n+1),
		chk:  chk,
		buf:  make([]term.Object, 0, 3)}
	for i, v := range o.Params {
		g.doms[i] = insts[v.Type()]
		if len(g.doms[i]) == 0 {
			g.empty = true
		}
	}
	for i := range o.builtins {
		d := o.builtins[i].at + 1
		g.bAt[d] = append(g.bAt[d], i)
	}
	if chk != nil {
		for i := range o.conds {
			d := o.conds[i].at + 1
			g.cAt[d] = append(g.cAt[d], i)
		}
	}
	return g
}

func (g *gen) run(f func(cur []term.Object) bool) {
	if g.empty {
		return
	}
	if !g.check(0) {
		return
	}
	g.rec(0, f)
}

// check evaluates everything determined at depth d.
func (g *gen) check(d int) bool {
	for _, i := range g.bAt[d] {
		if !g.o.builtins[i].holds(g.cur, g.buf) {
			return false
		}
	}
	for _, i := range g.cAt[d] {
		if !g.chk(&g.o.conds[i], i, g.cur) {
			return false
		}
	}
	return true
}

func (g *gen) rec(k int, f func(cur []term.Object) bool) bool {
	if k == len(g.cur) {
		return f(g.cur)
	}
	for _, obj := range g.doms[k] {
		g.cur[k] = obj
		if !g.check(k + 1) {
			continue
		}
		if !g.rec(k+1, f) {
			return false
		}
	}
	return true
}
