// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Adder counts from 0 to n by adding 1 at each step.  The plan has n
// steps.
func Adder(n int, opts ...gplan.Option) *gplan.Problem {
	objs := make([]term.Object, n+1)
	for i := range objs {
		objs[i] = term.Int(i)
	}
	old, nw := term.Var("old", term.IntType), term.Var("new", term.IntType)
	add1 := op.Must("add1",
		lits(lit("got", old), lit(op.Sum, old, term.Int(1), nw)),
		lits(lit("got", nw)),
		lits(lit("got", old)))
	return must(gplan.New(fmt.Sprintf("adder%d", n),
		objs,
		[]*op.Op{add1},
		lits(lit("got", term.Int(0))),
		lits(lit("got", term.Int(n))),
		opts...))
}
