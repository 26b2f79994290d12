// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import "fmt"

// Type Prop is the id of an interned ground literal.  Props are handed out
// in strictly increasing order starting at 1 and are never reused within
// one Table.
type Prop uint32

// PropNull is the zero Prop, never assigned to a literal.
const PropNull Prop = 0

// Type Table is an interning arena for ground literals.  A Table belongs to
// one planning run and is not safe for use by multiple goroutines.
type Table struct {
	lits []Literal
	sigs map[string]Prop
}

// NewTable creates an empty table.
func NewTable() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset forgets all interned literals.  Props issued before Reset must not
// be used afterwards.
func (t *Table) Reset() {
	t.lits = make([]Literal, 1, 128)
	t.sigs = make(map[string]Prop, 128)
}

// Intern returns the Prop of the ground literal l, registering it with the
// next Prop if its signature is new.
func (t *Table) Intern(l Literal) (Prop, error) {
	if !l.IsGround() {
		return PropNull, fmt.Errorf("intern %s: %w", l, ErrNotGround)
	}
	k := l.Key()
	if p, ok := t.sigs[k]; ok {
		return p, nil
	}
	if e := l.Check(); e != nil {
		return PropNull, e
	}
	p := Prop(len(t.lits))
	args := make([]Arg, len(l.Args))
	copy(args, l.Args)
	t.lits = append(t.lits, Literal{Pred: l.Pred, Args: args, Neg: l.Neg})
	t.sigs[k] = p
	return p, nil
}

// Instantiate substitutes b into the template l and interns the result.
func (t *Table) Instantiate(l Literal, b Subst) (Prop, error) {
	return t.Intern(l.Subst(b))
}

// Lookup returns the Prop of l if l is ground and already interned.
func (t *Table) Lookup(l Literal) (Prop, bool) {
	if !l.IsGround() {
		return PropNull, false
	}
	p, ok := t.sigs[l.Key()]
	return p, ok
}

// Lit returns the literal of p.  The result must not be modified.
func (t *Table) Lit(p Prop) Literal {
	return t.lits[p]
}

// Len returns the number of interned literals.
func (t *Table) Len() int {
	return len(t.lits) - 1
}

// Max returns the largest Prop issued so far, or PropNull.
func (t *Table) Max() Prop {
	return Prop(len(t.lits) - 1)
}

// String returns the literal of p prefixed by its number, as in 3:on(A,B).
func (t *Table) String(p Prop) string {
	return fmt.Sprintf("%d:%s", p, t.lits[p])
}
