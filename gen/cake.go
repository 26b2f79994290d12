// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Cake is the problem of having a cake and having eaten it too.  Eating
// asserts the negative literal ~have(cake), which baking requires.
func Cake(opts ...gplan.Option) *gplan.Problem {
	cake := term.Obj("cake", "Cake")
	have, eaten := lit("have", cake), lit("eaten", cake)
	eat := op.Must("eat", lits(have), lits(eaten, have.Not()), lits(have))
	bake := op.Must("bake", lits(have.Not()), lits(have), lits(have.Not()))
	return must(gplan.New("cake",
		[]term.Object{cake},
		[]*op.Op{eat, bake},
		lits(have),
		lits(have, eaten),
		opts...))
}
