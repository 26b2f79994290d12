// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

// LeveledOff returns whether the last two proposition levels have the
// same number of nodes and of mutex pairs.  Every later level then has
// the same structure.  The nogood part of the termination test is
// fixpoint.done, called by Solve after each failed stage.
func (g *Graph) LeveledOff() bool {
	n := len(g.props)
	if n < 2 {
		return false
	}
	a, b := g.props[n-2], g.props[n-1]
	return a.Len() == b.Len() && a.MutexPairs() == b.MutexPairs()
}

// fixpoint tracks the nogood table at the level where the graph leveled
// off across failed extraction stages.
type fixpoint struct {
	lvl  int // -1 until leveled off
	last int
}

func newFixpoint() *fixpoint {
	return &fixpoint{lvl: -1, last: -1}
}

// done is called after a failed stage and returns whether no later stage
// can succeed: the graph has leveled off and the stage recorded no new
// nogood at the leveled off level.
func (f *fixpoint) done(g *Graph) bool {
	if f.lvl < 0 {
		if !g.LeveledOff() {
			return false
		}
		f.lvl = g.Depth()
	}
	n := g.Nogoods(f.lvl)
	if n == f.last {
		return true
	}
	f.last = n
	return false
}
