// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Missionaries is the missionaries and cannibals problem: three of each
// cross a river in a boat for two, and the cannibals may never outnumber
// the missionaries on a bank where there are missionaries.
//
// state(side, m, c) counts the missionaries and cannibals on a side and
// legal(m, c) lists the safe counts on the side the boat leaves.
func Missionaries(opts ...gplan.Option) *gplan.Problem {
	const side = "Side"
	n := make([]term.Object, 4)
	for i := range n {
		n[i] = term.Int(i)
	}
	east, west := term.Obj("east", side), term.Obj("west", side)

	iv := func(name string) term.Placeholder { return term.Var(name, term.IntType) }
	m1, m1x, c1, c1x := iv("m1"), iv("m1x"), iv("c1"), iv("c1x")
	m2, m2x, c2, c2x := iv("m2"), iv("m2x"), iv("c2"), iv("c2x")
	s1, s2 := term.Var("side1", side), term.Var("side2", side)

	// crossing builds the operator moving dm missionaries and dc cannibals
	// from side1 to side2.
	crossing := func(name string, dm, dc int) *op.Op {
		pre := lits(lit("at", s1),
			lit("other", s2),
			lit(op.NotEqual, s1, s2),
			lit("state", s1, m1, c1),
			lit("state", s2, m2, c2))
		mFrom, mTo, cFrom, cTo := term.Arg(m1), term.Arg(m2), term.Arg(c1), term.Arg(c2)
		if dm > 0 {
			pre = append(pre,
				lit(op.Sum, m1x, term.Int(dm), m1),
				lit(op.Sum, m2, term.Int(dm), m2x))
			mFrom, mTo = m1x, m2x
		}
		if dc > 0 {
			pre = append(pre,
				lit(op.Sum, c1x, term.Int(dc), c1),
				lit(op.Sum, c2, term.Int(dc), c2x))
			cFrom, cTo = c1x, c2x
		}
		pre = append(pre,
			lit(op.Sum, m1, m2, n[3]),
			lit(op.Sum, c1, c2, n[3]),
			lit("legal", mFrom, cFrom))
		return op.Must(name, pre,
			lits(lit("at", s2),
				lit("other", s1),
				lit("state", s1, mFrom, cFrom),
				lit("state", s2, mTo, cTo)),
			lits(lit("at", s1),
				lit("other", s2),
				lit("state", s1, m1, c1),
				lit("state", s2, m2, c2)))
	}

	var init []term.Literal
	init = append(init,
		lit("at", east),
		lit("other", west),
		lit("state", east, n[3], n[3]),
		lit("state", west, n[0], n[0]))
	for _, mc := range [][2]int{{3, 3}, {2, 2}, {1, 1}, {3, 2}, {3, 1}, {3, 0}, {0, 3}, {0, 2}, {0, 1}, {0, 0}} {
		init = append(init, lit("legal", n[mc[0]], n[mc[1]]))
	}

	return must(gplan.New("missionaries",
		append(n, east, west),
		[]*op.Op{
			crossing("move_1m", 1, 0),
			crossing("move_1c", 0, 1),
			crossing("move_2m", 2, 0),
			crossing("move_2c", 0, 2),
			crossing("move_1m1c", 1, 1)},
		init,
		lits(lit("state", west, n[3], n[3])),
		opts...))
}
