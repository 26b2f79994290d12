// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import (
	"context"
	"encoding/binary"
	"slices"
)

const checkEvery = 1024

// extractor searches a graph backwards from a goal set at its last level.
type extractor struct {
	g    *Graph
	ctx  context.Context
	plan [][]int32 // plan[i] selects actions of action level i
	st   *Stats
	n    int
	err  error
}

// Extract tries to find, for the goal nodes at the last level, a sequence
// of pairwise non-mutex action sets reaching them from level 0.  On
// success it returns the selected action nodes per action level,
// including no-ops.  Goal sets shown unachievable are recorded per level
// and persist across calls.
//
// If ctx is done during the search, Extract returns ctx.Err() and records
// nothing for the interrupted branch.
func (g *Graph) Extract(ctx context.Context, goals []int32, st *Stats) ([][]int32, bool, error) {
	if st == nil {
		st = &Stats{}
	}
	d := g.Depth()
	x := &extractor{g: g, ctx: ctx, plan: make([][]int32, d), st: st}
	gs := x.canon(d, goals)
	ok := x.level(d, gs, false)
	if x.err != nil {
		return nil, false, x.err
	}
	if !ok {
		return nil, false, nil
	}
	return x.plan, true, nil
}

// canon returns the goal nodes ns at level lvl deduplicated and sorted
// by proposition.
func (x *extractor) canon(lvl int, ns []int32) []int32 {
	nodes := x.g.props[lvl].Nodes
	res := slices.Clone(ns)
	slices.SortFunc(res, func(a, b int32) int {
		pa, pb := nodes[a].Prop, nodes[b].Prop
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})
	return slices.Compact(res)
}

func (x *extractor) key(lvl int, goals []int32) string {
	nodes := x.g.props[lvl].Nodes
	buf := make([]byte, 0, 4*len(goals))
	for _, n := range goals {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(nodes[n].Prop))
	}
	return string(buf)
}

// level solves the canonical goal set goals at level lvl.  memo
// indicates goals are to be looked up and recorded in the nogood table.
func (x *extractor) level(lvl int, goals []int32, memo bool) bool {
	if lvl == 0 {
		return true
	}
	var k string
	if memo {
		k = x.key(lvl, goals)
		if _, hit := x.g.nogoods[lvl][k]; hit {
			x.st.MemoHits++
			return false
		}
	}
	if x.assign(lvl, goals, goals, nil, nil) {
		return true
	}
	if memo && x.err == nil {
		x.g.nogoods[lvl][k] = struct{}{}
		x.st.MemoWrites++
	}
	return false
}

// assign selects adders at action level lvl-1 for the goals remaining at
// level lvl, accumulating the preconditions of the selection in sub.
func (x *extractor) assign(lvl int, goals, remaining, sub, sel []int32) bool {
	if x.err != nil {
		return false
	}
	x.st.Expanded++
	x.n++
	if x.n%checkEvery == 0 {
		if e := x.ctx.Err(); e != nil {
			x.err = e
			return false
		}
	}
	if len(remaining) == 0 {
		x.plan[lvl-1] = slices.Clone(sel)
		return x.level(lvl-1, x.canon(lvl-1, sub), true)
	}
	al := x.g.acts[lvl-1]
	goal := remaining[0]
	for _, a := range x.g.props[lvl].Nodes[goal].Adders {
		if x.excluded(al, a, sel) {
			continue
		}
		tent := append(slices.Clip(sel), a)
		if x.cutoff(lvl, remaining[1:], tent) {
			continue
		}
		if !x.minimal(al, goals, tent) {
			continue
		}
		an := &al.Nodes[a]
		rest := make([]int32, 0, len(remaining))
		for _, r := range remaining[1:] {
			if !has(an.Add, r) {
				rest = append(rest, r)
			}
		}
		nsub := slices.Clip(sub)
		for _, p := range an.Pre {
			if !has(nsub, p) {
				nsub = append(nsub, p)
			}
		}
		if x.assign(lvl, goals, rest, nsub, tent) {
			return true
		}
		if x.err != nil {
			return false
		}
	}
	return false
}

func (x *extractor) excluded(al *ALevel, a int32, sel []int32) bool {
	for _, s := range sel {
		if al.Mutex(a, s) {
			return true
		}
	}
	return false
}

// cutoff returns whether some goal in remaining has every adder mutex
// with some action in tent.
func (x *extractor) cutoff(lvl int, remaining, tent []int32) bool {
	al := x.g.acts[lvl-1]
	nodes := x.g.props[lvl].Nodes
	for _, r := range remaining {
		live := false
		for _, a := range nodes[r].Adders {
			if !x.excluded(al, a, tent) {
				live = true
				break
			}
		}
		if !live {
			return true
		}
	}
	return false
}

// minimal returns false if some action of tent may be dropped with the
// others still adding all of goals.
func (x *extractor) minimal(al *ALevel, goals, tent []int32) bool {
	cover := make([]int, len(goals))
	for _, a := range tent {
		add := al.Nodes[a].Add
		for i, g := range goals {
			if has(add, g) {
				cover[i]++
			}
		}
	}
	for _, c := range cover {
		if c == 0 {
			return true
		}
	}
	for _, a := range tent {
		add := al.Nodes[a].Add
		redundant := true
		for i, g := range goals {
			if cover[i] == 1 && has(add, g) {
				redundant = false
				break
			}
		}
		if redundant {
			return false
		}
	}
	return true
}
