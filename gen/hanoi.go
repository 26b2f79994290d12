// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Hanoi is the towers of Hanoi with n disks, 1 <= n <= 9, moved from rod1
// to rod3.  Disks and rods are of one type; a disk may be put on any
// object whose name orders after its own, so disk1 is the smallest disk
// and every rod is larger than every disk.
func Hanoi(n int, opts ...gplan.Option) *gplan.Problem {
	if n < 1 || n > 9 {
		panic(fmt.Sprintf("hanoi: %d disks", n))
	}
	const object = "object"
	disks := make([]term.Object, n)
	for i := range disks {
		disks[i] = term.Obj(fmt.Sprintf("disk%d", i+1), object)
	}
	rods := []term.Object{term.Obj("rod1", object), term.Obj("rod2", object), term.Obj("rod3", object)}

	disk, from, to := term.Var("disk", object), term.Var("from", object), term.Var("to", object)
	move := op.Must("move",
		lits(lit("clear", disk), lit("clear", to), lit("on", disk, from), lit(op.LessThan, disk, to)),
		lits(lit("clear", from), lit("on", disk, to)),
		lits(lit("clear", to), lit("on", disk, from)))

	stack := func(rod term.Object) []term.Literal {
		var res []term.Literal
		for i := 0; i < n-1; i++ {
			res = append(res, lit("on", disks[i], disks[i+1]))
		}
		return append(res, lit("on", disks[n-1], rod))
	}
	init := append(stack(rods[0]), lit("clear", disks[0]), lit("clear", rods[1]), lit("clear", rods[2]))
	return must(gplan.New(fmt.Sprintf("hanoi%d", n),
		append(disks, rods...),
		[]*op.Op{move},
		init,
		stack(rods[2]),
		opts...))
}
