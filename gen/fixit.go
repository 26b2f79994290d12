// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// Fixit is the flat tyre problem: fetch the tools and the spare wheel
// from the boot, change and inflate the wheel and put everything away.
func Fixit(opts ...gplan.Option) *gplan.Problem {
	const (
		wheelT     = "Wheel"
		hubT       = "Hub"
		nutT       = "Nut"
		containerT = "Container"
		toolT      = "Tool"
	)
	wheel1, wheel2 := term.Obj("wheel1", wheelT), term.Obj("wheel2", wheelT)
	hub, nuts := term.Obj("hub", hubT), term.Obj("nuts", nutT)
	boot := term.Obj("boot", containerT)
	jack, pump, wrench := term.Obj("jack", toolT), term.Obj("pump", toolT), term.Obj("wrench", toolT)

	c := term.Var("container", containerT)
	w := term.Var("wheel", wheelT)
	t := term.Var("tool", toolT)
	n := term.Var("nut", nutT)
	h := term.Var("hub", hubT)

	ops := []*op.Op{
		op.Must("cuss", nil, lits(lit("not_annoyed")), nil),
		op.Must("open",
			lits(lit("not_open", c)),
			lits(lit("open", c)),
			lits(lit("not_open", c))),
		op.Must("close",
			lits(lit("open", c)),
			lits(lit("not_open", c)),
			lits(lit("open", c))),
		op.Must("fetch_tool",
			lits(lit("in", t, c), lit("open", c)),
			lits(lit("have", t)),
			lits(lit("in", t, c))),
		op.Must("fetch_wheel",
			lits(lit("in", w, c), lit("open", c)),
			lits(lit("have", w)),
			lits(lit("in", w, c))),
		op.Must("put_away_tool",
			lits(lit("have", t), lit("open", c)),
			lits(lit("in", t, c)),
			lits(lit("have", t))),
		op.Must("put_away_wheel",
			lits(lit("have", w), lit("open", c)),
			lits(lit("in", w, c)),
			lits(lit("have", w))),
		op.Must("loosen",
			lits(lit("have", wrench), lit("tight", n, h), lit("on_ground", h)),
			lits(lit("loose", n, h)),
			lits(lit("tight", n, h))),
		op.Must("tighten",
			lits(lit("have", wrench), lit("loose", n, h), lit("on_ground", h)),
			lits(lit("tight", n, h)),
			lits(lit("loose", n, h))),
		op.Must("jack_up",
			lits(lit("on_ground", h), lit("have", jack)),
			lits(lit("not_on_ground", h)),
			lits(lit("have", jack), lit("on_ground", h))),
		op.Must("jack_down",
			lits(lit("not_on_ground", h)),
			lits(lit("on_ground", h), lit("have", jack)),
			lits(lit("not_on_ground", h))),
		op.Must("undo",
			lits(lit("not_on_ground", h), lit("not_unfastened", h), lit("have", wrench), lit("loose", n, h)),
			lits(lit("have", n), lit("unfastened", h)),
			lits(lit("on", n, h), lit("loose", n, h), lit("not_unfastened", h))),
		op.Must("do_up",
			lits(lit("have", wrench), lit("unfastened", h), lit("not_on_ground", h), lit("have", n)),
			lits(lit("loose", n, h), lit("not_unfastened", h)),
			lits(lit("have", n), lit("unfastened", h))),
		op.Must("remove_wheel",
			lits(lit("not_on_ground", h), lit("on", w, h), lit("unfastened", h)),
			lits(lit("have", w), lit("free", h)),
			lits(lit("on", w, h))),
		op.Must("put_on_wheel",
			lits(lit("have", w), lit("free", h), lit("unfastened", h), lit("not_on_ground", h)),
			lits(lit("on", w, h)),
			lits(lit("have", w), lit("free", h))),
		op.Must("inflate",
			lits(lit("have", pump), lit("not_inflated", w), lit("intact", w)),
			lits(lit("inflated", w)),
			lits(lit("not_inflated", w))),
	}

	return must(gplan.New("fixit",
		[]term.Object{wheel1, wheel2, hub, nuts, boot, jack, pump, wrench},
		ops,
		lits(lit("not_open", boot),
			lit("intact", wheel2),
			lit("in", jack, boot),
			lit("in", pump, boot),
			lit("in", wheel2, boot),
			lit("in", wrench, boot),
			lit("on", wheel1, hub),
			lit("on_ground", hub),
			lit("tight", nuts, hub),
			lit("not_inflated", wheel2),
			lit("not_unfastened", hub)),
		lits(lit("not_open", boot),
			lit("in", jack, boot),
			lit("in", pump, boot),
			lit("in", wheel1, boot),
			lit("in", wrench, boot),
			lit("tight", nuts, hub),
			lit("inflated", wheel2),
			lit("on", wheel2, hub)),
		opts...))
}
