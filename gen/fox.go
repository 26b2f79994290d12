// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Fox is the farmer crossing a river with a fox, a goose and beans.  The
// goose may not be left with the fox nor with the beans.
func Fox(opts ...gplan.Option) *gplan.Problem {
	const (
		object = "object"
		place  = "place"
	)
	farmer, fox := term.Obj("farmer", object), term.Obj("fox", object)
	goose, beans := term.Obj("goose", object), term.Obj("beans", object)
	east, west := term.Obj("east", place), term.Obj("west", place)

	obj, other := term.Var("object", object), term.Var("other_object", object)
	neighbor := term.Var("neighbor", object)
	from, to := term.Var("from", place), term.Var("to", place)
	placeG, otherG := term.Var("place_g", place), term.Var("other_g", place)

	effects := func() ([]term.Literal, []term.Literal) {
		return lits(lit("at", farmer, to), lit("at", obj, to)),
			lits(lit("at", farmer, from), lit("at", obj, from))
	}

	// the goose is alone: anything may cross
	add, del := effects()
	move1 := op.Must("move1",
		lits(lit("at", farmer, from),
			lit("at", obj, from),
			lit("at", goose, placeG),
			lit("at", fox, otherG),
			lit("at", beans, otherG),
			lit("other_place", from, to),
			lit("other_place", placeG, otherG)),
		add, del)

	// the goose is with one of the others: anything but the farmer
	add, del = effects()
	move2 := op.Must("move2",
		lits(lit("at", farmer, from),
			lit("at", goose, from),
			lit("at", neighbor, from),
			lit(op.NotEqual, obj, farmer),
			lit("at", other, to),
			lit("other_place", from, to),
			lit("other_object", neighbor, other)),
		add, del)

	// the goose is with both: only the goose
	add, del = effects()
	move3 := op.Must("move3",
		lits(lit("at", farmer, from),
			lit("at", goose, from),
			lit("at", fox, from),
			lit("at", beans, from),
			lit(op.Equal, obj, goose),
			lit("other_place", from, to)),
		add, del)

	return must(gplan.New("fox",
		[]term.Object{farmer, fox, goose, beans, east, west},
		[]*op.Op{move1, move2, move3},
		lits(lit("at", farmer, east),
			lit("at", fox, east),
			lit("at", goose, east),
			lit("at", beans, east),
			lit("other_place", east, west),
			lit("other_place", west, east),
			lit("other_object", fox, beans),
			lit("other_object", beans, fox)),
		lits(lit("at", farmer, west),
			lit("at", fox, west),
			lit("at", goose, west),
			lit("at", beans, west)),
		opts...))
}
