// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Rocket is the rocket problem of the GraphPlan paper: two packages are
// carried from london to paris by a rocket with fuel for one flight.
func Rocket(opts ...gplan.Option) *gplan.Problem {
	const (
		rocket = "Rocket"
		place  = "Place"
		cargo  = "Cargo"
	)
	r1 := term.Obj("rocket1", rocket)
	london, paris := term.Obj("london", place), term.Obj("paris", place)
	pkgA, pkgB := term.Obj("pkgA", cargo), term.Obj("pkgB", cargo)

	r, from, to := term.Var("r", rocket), term.Var("from", place), term.Var("to", place)
	p, c := term.Var("p", place), term.Var("c", cargo)

	move := op.Must("move",
		lits(lit(op.Equal, from, to).Not(), lit("at", r, from), lit("has_fuel", r)),
		lits(lit("at", r, to)),
		lits(lit("at", r, from), lit("has_fuel", r)))
	unload := op.Must("unload",
		lits(lit("at", r, p), lit("in", c, r)),
		lits(lit("at", c, p)),
		lits(lit("in", c, r)))
	load := op.Must("load",
		lits(lit("at", r, p), lit("at", c, p)),
		lits(lit("in", c, r)),
		lits(lit("at", c, p)))

	return must(gplan.New("rocket",
		[]term.Object{r1, london, paris, pkgA, pkgB},
		[]*op.Op{move, unload, load},
		lits(lit("at", pkgA, london), lit("at", pkgB, london),
			lit("at", r1, london), lit("has_fuel", r1)),
		lits(lit("at", pkgA, paris), lit("at", pkgB, paris)),
		opts...))
}
