// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Type Graph is a planning graph: proposition levels 0..n interleaved with
// action levels 0..n-1.  Action level i consumes proposition level i and
// produces proposition level i+1.
//
// All relations between nodes are indices into the arrays of the levels
// they point to.
type Graph struct {
	Tab   *term.Table
	ops   []*op.Op
	insts map[string][]term.Object

	props   []*PLevel
	acts    []*ALevel
	nogoods []map[string]struct{}

	log *zap.Logger
}

// Type PLevel is a proposition level.
type PLevel struct {
	Nodes  []PNode
	idx    map[term.Prop]int32
	nMutex int
}

// Type PNode is a proposition node.
type PNode struct {
	Prop     term.Prop
	Adders   []int32 // action level i-1
	Deleters []int32 // action level i-1
	Users    []int32 // action level i
	excl     set
}

// Type ALevel is an action level.
type ALevel struct {
	Nodes  []ANode
	nMutex int
}

// Type ANode is an action node.  Op is nil for no-ops.
type ANode struct {
	Op    *op.Op
	Subst term.Subst
	Pre   []int32 // proposition level i
	Add   []int32 // proposition level i+1
	Del   []int32 // proposition level i+1
	dels  []term.Prop
	excl  set
}

// IsNoop returns whether a carries a proposition forward unchanged.
func (a *ANode) IsNoop() bool {
	return a.Op == nil
}

// New creates a graph whose level 0 contains the propositions init.
func New(tab *term.Table, ops []*op.Op, insts map[string][]term.Object, init []term.Prop, log *zap.Logger) *Graph {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Graph{
		Tab:     tab,
		ops:     ops,
		insts:   insts,
		nogoods: []map[string]struct{}{make(map[string]struct{})},
		log:     log}
	p0 := newPLevel(len(init))
	for _, p := range init {
		p0.get(p)
	}
	p0.seal()
	g.props = append(g.props, p0)
	return g
}

func newPLevel(capHint int) *PLevel {
	return &PLevel{
		Nodes: make([]PNode, 0, capHint),
		idx:   make(map[term.Prop]int32, capHint)}
}

// get returns the node of p, creating it if needed.
func (l *PLevel) get(p term.Prop) int32 {
	if n, ok := l.idx[p]; ok {
		return n
	}
	n := int32(len(l.Nodes))
	l.Nodes = append(l.Nodes, PNode{Prop: p})
	l.idx[p] = n
	return n
}

// seal allocates the mutex sets once the level's nodes are known.
func (l *PLevel) seal() {
	for i := range l.Nodes {
		l.Nodes[i].excl = newSet(len(l.Nodes))
	}
}

// Node implements op.PropLevel.
func (l *PLevel) Node(p term.Prop) (int32, bool) {
	n, ok := l.idx[p]
	return n, ok
}

// Mutex implements op.PropLevel.
func (l *PLevel) Mutex(i, j int32) bool {
	return l.Nodes[i].excl.has(j)
}

// Len returns the number of nodes of l.
func (l *PLevel) Len() int {
	return len(l.Nodes)
}

// MutexPairs returns the number of unordered mutex pairs of nodes in l.
func (l *PLevel) MutexPairs() int {
	return l.nMutex
}

// Excludes returns the nodes mutex with node i.
func (l *PLevel) Excludes(i int32) []int32 {
	return members(l.Nodes[i].excl)
}

// Mutex returns whether the action nodes i and j are mutex.
func (l *ALevel) Mutex(i, j int32) bool {
	return l.Nodes[i].excl.has(j)
}

// MutexPairs returns the number of unordered mutex pairs of nodes in l.
func (l *ALevel) MutexPairs() int {
	return l.nMutex
}

// Excludes returns the nodes mutex with node i.
func (l *ALevel) Excludes(i int32) []int32 {
	return members(l.Nodes[i].excl)
}

func members(s set) []int32 {
	var res []int32
	s.each(func(i int32) { res = append(res, i) })
	return res
}

// Depth returns the index of the last proposition level.
func (g *Graph) Depth() int {
	return len(g.props) - 1
}

// Props returns proposition level i.
func (g *Graph) Props(i int) *PLevel {
	return g.props[i]
}

// Acts returns action level i.
func (g *Graph) Acts(i int) *ALevel {
	return g.acts[i]
}

// Nogoods returns the number of goal sets recorded as unsolvable at
// proposition level i.
func (g *Graph) Nogoods(i int) int {
	return len(g.nogoods[i])
}

// Goals returns the nodes of ps at the last level.  ok is false if some
// p in ps is missing.
func (g *Graph) Goals(ps []term.Prop) (ns []int32, ok bool) {
	l := g.props[len(g.props)-1]
	ns = make([]int32, 0, len(ps))
	for _, p := range ps {
		n, ok := l.idx[p]
		if !ok {
			return nil, false
		}
		ns = append(ns, n)
	}
	return ns, true
}

// AnyMutex returns whether some pair of the nodes ns at the last level is
// mutex.
func (g *Graph) AnyMutex(ns []int32) bool {
	l := g.props[len(g.props)-1]
	for i, n := range ns {
		for _, m := range ns[i+1:] {
			if l.Mutex(n, m) {
				return true
			}
		}
	}
	return false
}

// ActString returns a short description of action node i of level lvl.
func (g *Graph) ActString(lvl int, i int32) string {
	a := &g.acts[lvl].Nodes[i]
	if a.IsNoop() {
		p := g.props[lvl].Nodes[a.Pre[0]].Prop
		return fmt.Sprintf("noop %s", g.Tab.Lit(p))
	}
	return a.Op.Action(a.Subst)
}
