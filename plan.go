// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// ErrPlan is returned by Check for plans which do not reach their goals.
var ErrPlan = errors.New("invalid plan")

// Action is a grounded operator.
type Action struct {
	Op    *op.Op
	Subst term.Subst
}

func (a Action) String() string {
	return a.Op.Action(a.Subst)
}

// Step is a set of actions which may execute in parallel.
type Step []Action

func (s Step) String() string {
	parts := make([]string, len(s))
	for i, a := range s {
		parts[i] = a.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Plan is a sequence of steps.
type Plan []Step

// Len returns the number of actions of p.
func (p Plan) Len() int {
	n := 0
	for _, s := range p {
		n += len(s)
	}
	return n
}

// Strings returns the action names of p by step.
func (p Plan) Strings() [][]string {
	res := make([][]string, len(p))
	for i, s := range p {
		res[i] = make([]string, len(s))
		for j, a := range s {
			res[i][j] = a.String()
		}
	}
	return res
}

func (p Plan) String() string {
	var sb strings.Builder
	for i, s := range p {
		fmt.Fprintf(&sb, "%d: %s\n", i, s)
	}
	return sb.String()
}

// Check replays p from the state init and returns an error wrapping
// ErrPlan unless goals hold at the end.
//
// A step applies when all preconditions of its actions hold, builtins
// included, and no action of the step deletes a precondition or an add
// effect of another.  The state after the step is the state before it,
// less all deletes, plus all adds.
func (p Plan) Check(init, goals []term.Literal) error {
	state := make(map[string]bool, len(init))
	for _, l := range init {
		state[l.Key()] = true
	}
	for i, s := range p {
		dels := make(map[string][]int)
		adds := make(map[string]bool)
		for j, a := range s {
			for _, l := range a.Op.Pre {
				g := l.Subst(a.Subst)
				if op.IsBuiltin(g.Pred) {
					ok, e := op.Eval(g)
					if e != nil {
						return fmt.Errorf("step %d: %s: %w", i, a, e)
					}
					if !ok {
						return fmt.Errorf("%w: step %d: %s: %s fails", ErrPlan, i, a, g)
					}
					continue
				}
				if !state[g.Key()] {
					return fmt.Errorf("%w: step %d: %s: %s does not hold", ErrPlan, i, a, g)
				}
			}
			for _, l := range a.Op.Del {
				k := l.Subst(a.Subst).Key()
				dels[k] = append(dels[k], j)
			}
			for _, l := range a.Op.Add {
				adds[l.Subst(a.Subst).Key()] = true
			}
		}
		for j, a := range s {
			for _, ls := range [][]term.Literal{a.Op.Pre, a.Op.Add} {
				for _, l := range ls {
					k := l.Subst(a.Subst).Key()
					for _, d := range dels[k] {
						if d != j {
							return fmt.Errorf("%w: step %d: %s interferes with %s", ErrPlan, i, s[d], a)
						}
					}
				}
			}
		}
		for k := range dels {
			delete(state, k)
		}
		for k := range adds {
			state[k] = true
		}
	}
	for _, l := range goals {
		if !state[l.Key()] {
			return fmt.Errorf("%w: goal %s does not hold", ErrPlan, l)
		}
	}
	return nil
}
