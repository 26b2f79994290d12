// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package op

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-air/gplan/term"
)

var (
	// ErrName is returned for operator names which are not atoms.
	ErrName = errors.New("invalid operator name")
	// ErrUnbound is returned when an effect mentions a placeholder which
	// no precondition binds.
	ErrUnbound = errors.New("effect placeholder not bound by any precondition")
	// ErrBuiltin is returned for builtin literals of the wrong arity or
	// builtins used as effects.
	ErrBuiltin = errors.New("invalid builtin literal")
)

// Type Op is an operator schema.
type Op struct {
	Name   string
	Params []term.Placeholder
	Pre    []term.Literal
	Add    []term.Literal
	Del    []term.Literal

	builtins []cLit // builtin preconditions
	conds    []cLit // preconditions which are propositions
	pidx     map[term.Placeholder]int
}

// Type cLit is a precondition compiled against the parameter list.
type cLit struct {
	lit term.Literal
	pos []int // parameter index of each argument, -1 for objects
	at  int   // largest parameter index in pos, -1 if ground
}

// New creates an operator.  The parameters are inferred from pre.  New
// returns an error wrapping ErrUnbound if an add or delete literal uses
// a placeholder not occurring in pre.
func New(name string, pre, add, del []term.Literal) (*Op, error) {
	if !term.IsAtom(name) {
		return nil, fmt.Errorf("%w: %q", ErrName, name)
	}
	o := &Op{
		Name: name,
		Pre:  append([]term.Literal(nil), pre...),
		Add:  append([]term.Literal(nil), add...),
		Del:  append([]term.Literal(nil), del...),
		pidx: make(map[term.Placeholder]int)}
	for i, l := range o.Pre {
		if e := l.Check(); e != nil {
			return nil, fmt.Errorf("op %s: pre[%d]: %w", name, i, e)
		}
		if IsBuiltin(l.Pred) && len(l.Args) != arity(l.Pred) {
			return nil, fmt.Errorf("op %s: pre[%d]: %w: %s takes %d arguments", name, i, ErrBuiltin, l.Pred, arity(l.Pred))
		}
		o.Params = l.Placeholders(o.Params)
	}
	for i, v := range o.Params {
		o.pidx[v] = i
	}
	for _, eff := range [...]struct {
		kind string
		ls   []term.Literal
	}{{"add", o.Add}, {"del", o.Del}} {
		for i, l := range eff.ls {
			if e := l.Check(); e != nil {
				return nil, fmt.Errorf("op %s: %s[%d]: %w", name, eff.kind, i, e)
			}
			if IsBuiltin(l.Pred) {
				return nil, fmt.Errorf("op %s: %s[%d]: %w: %s is not a proposition", name, eff.kind, i, ErrBuiltin, l.Pred)
			}
			for _, v := range l.Placeholders(nil) {
				if _, ok := o.pidx[v]; !ok {
					return nil, fmt.Errorf("op %s: %s[%d]: %w: %s", name, eff.kind, i, ErrUnbound, v)
				}
			}
		}
	}
	for _, l := range o.Pre {
		c := o.compile(l)
		if IsBuiltin(l.Pred) {
			o.builtins = append(o.builtins, c)
		} else {
			o.conds = append(o.conds, c)
		}
	}
	return o, nil
}

// Must is like New but panics on error.  It is meant for operator tables
// built from literals in code.
func Must(name string, pre, add, del []term.Literal) *Op {
	o, e := New(name, pre, add, del)
	if e != nil {
		panic(e)
	}
	return o
}

func (o *Op) compile(l term.Literal) cLit {
	c := cLit{lit: l, pos: make([]int, len(l.Args)), at: -1}
	for i, a := range l.Args {
		c.pos[i] = -1
		if v, ok := a.(term.Placeholder); ok {
			j := o.pidx[v]
			c.pos[i] = j
			if j > c.at {
				c.at = j
			}
		}
	}
	return c
}

// Builtins returns the builtin preconditions of o.
func (o *Op) Builtins() []term.Literal {
	res := make([]term.Literal, len(o.builtins))
	for i := range o.builtins {
		res[i] = o.builtins[i].lit
	}
	return res
}

// Conds returns the preconditions of o which are propositions.
func (o *Op) Conds() []term.Literal {
	res := make([]term.Literal, len(o.conds))
	for i := range o.conds {
		res[i] = o.conds[i].lit
	}
	return res
}

// Types returns the types of the parameters of o, without duplicates.
func (o *Op) Types() []string {
	var res []string
	seen := make(map[string]bool)
	for _, v := range o.Params {
		if !seen[v.Type()] {
			seen[v.Type()] = true
			res = append(res, v.Type())
		}
	}
	return res
}

// Args returns the objects bound to the parameters of o by b, in parameter
// order.
func (o *Op) Args(b term.Subst) []term.Object {
	res := make([]term.Object, len(o.Params))
	for i, v := range o.Params {
		res[i] = b[v]
	}
	return res
}

func (o *Op) String() string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	sb.WriteByte('(')
	for i, v := range o.Params {
		if i != 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Action returns the name of the grounding of o under b, as in
// "move(A,B,C)".
func (o *Op) Action(b term.Subst) string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	sb.WriteByte('(')
	for i, x := range o.Args(b) {
		if i != 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(x.Name())
	}
	sb.WriteByte(')')
	return sb.String()
}
