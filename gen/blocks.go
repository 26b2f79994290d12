// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Block is the object type of blocks world problems.
const Block = "Block"

// BlocksOps returns the operators of the blocks world: moving a clear
// block onto another clear block, to the table, or from the table.
func BlocksOps() []*op.Op {
	obj, from, to := term.Var("obj", Block), term.Var("from", Block), term.Var("to", Block)
	neq := func(a, b term.Arg) term.Literal { return lit(op.Equal, a, b).Not() }
	return []*op.Op{
		op.Must("move",
			lits(neq(obj, from), neq(obj, to), neq(from, to),
				lit("on", obj, from), lit("clear", obj), lit("clear", to)),
			lits(lit("on", obj, to), lit("clear", from)),
			lits(lit("on", obj, from), lit("clear", to))),
		op.Must("move_to_table",
			lits(neq(obj, from), lit("on", obj, from), lit("clear", obj)),
			lits(lit("on_table", obj), lit("clear", from)),
			lits(lit("on", obj, from))),
		op.Must("move_from_table",
			lits(neq(obj, to), lit("on_table", obj), lit("clear", obj), lit("clear", to)),
			lits(lit("on", obj, to)),
			lits(lit("on_table", obj), lit("clear", to)))}
}

// Towers returns the literals describing stacks of blocks.  Each tower is
// listed bottom up.
func Towers(towers ...[]term.Object) []term.Literal {
	var res []term.Literal
	for _, t := range towers {
		for i, b := range t {
			if i == 0 {
				res = append(res, lit("on_table", b))
			} else {
				res = append(res, lit("on", b, t[i-1]))
			}
			if i == len(t)-1 {
				res = append(res, lit("clear", b))
			}
		}
	}
	return res
}

// Blocks creates a blocks world problem over objs.
func Blocks(name string, objs []term.Object, init, goals []term.Literal, opts ...gplan.Option) *gplan.Problem {
	return must(gplan.New(name, objs, BlocksOps(), init, goals, opts...))
}

func blockObjs(n int) []term.Object {
	res := make([]term.Object, n)
	for i := range res {
		res[i] = term.Obj(string(rune('A'+i%26))+suffix(i/26), Block)
	}
	return res
}

func suffix(i int) string {
	if i == 0 {
		return ""
	}
	return fmt.Sprint(i)
}

// Blocks1 turns B on A, C into A on B on C.
func Blocks1(opts ...gplan.Option) *gplan.Problem {
	bs := blockObjs(3)
	a, b, c := bs[0], bs[1], bs[2]
	return Blocks("blocks1", bs,
		Towers([]term.Object{a, b}, []term.Object{c}),
		lits(lit("on", a, b), lit("on", b, c)),
		opts...)
}

// Blocks2 turns A on B, C into A on B on C.
func Blocks2(opts ...gplan.Option) *gplan.Problem {
	bs := blockObjs(3)
	a, b, c := bs[0], bs[1], bs[2]
	return Blocks("blocks2", bs,
		Towers([]term.Object{b, a}, []term.Object{c}),
		lits(lit("on", a, b), lit("on", b, c)),
		opts...)
}

// Blocks3 reverses part of a tower of 4 blocks: A on C on B on D becomes
// A on B on C on D.
func Blocks3(opts ...gplan.Option) *gplan.Problem {
	bs := blockObjs(4)
	a, b, c, d := bs[0], bs[1], bs[2], bs[3]
	return Blocks("blocks3", bs,
		Towers([]term.Object{d, b, c, a}),
		lits(lit("on", a, b), lit("on", b, c), lit("on", c, d)),
		opts...)
}

// BlocksCycle asks for A on B, B on C and C on A, which has no plan.
func BlocksCycle(opts ...gplan.Option) *gplan.Problem {
	bs := blockObjs(3)
	a, b, c := bs[0], bs[1], bs[2]
	return Blocks("blocks-cycle", bs,
		Towers([]term.Object{a}, []term.Object{b}, []term.Object{c}),
		lits(lit("on", a, b), lit("on", b, c), lit("on", c, a)),
		opts...)
}

// RandBlocks creates a blocks world problem with n blocks whose initial
// and goal states are random sets of towers.
func RandBlocks(n int, opts ...gplan.Option) *gplan.Problem {
	bs := blockObjs(n)
	mu.Lock()
	init := randTowers(bs)
	goal := randTowers(bs)
	mu.Unlock()
	var goals []term.Literal
	for _, l := range Towers(goal...) {
		if l.Pred == "on" {
			goals = append(goals, l)
		}
	}
	return Blocks(fmt.Sprintf("rand-blocks%d", n), bs, Towers(init...), goals, opts...)
}

// randTowers splits a random permutation of bs into towers.
func randTowers(bs []term.Object) [][]term.Object {
	perm := rng.Perm(len(bs))
	var res [][]term.Object
	var cur []term.Object
	for _, i := range perm {
		cur = append(cur, bs[i])
		if rng.Intn(3) == 0 {
			res = append(res, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}
