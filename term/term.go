// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrPredicate is returned for predicate names which are not atoms.
	ErrPredicate = errors.New("invalid predicate name")
	// ErrArg is returned for nil or malformed literal arguments.
	ErrArg = errors.New("invalid literal argument")
	// ErrNotGround is returned when interning a literal with a placeholder.
	ErrNotGround = errors.New("literal is not ground")
)

// IntType is the type given to objects created by Int.
const IntType = "int"

// Interface Arg is an argument of a literal.  The only implementations
// are Object and Placeholder.
type Arg interface {
	Name() string
	Type() string
	String() string
	isArg()
}

// Type Object is a named, typed constant.  Objects are equal iff
// their names and types are equal.
type Object struct {
	name  string
	typ   string
	num   int
	isNum bool
}

// Obj creates an object named name of type typ.  If name is the decimal
// representation of an integer, the object has a numeric key.
func Obj(name, typ string) Object {
	o := Object{name: name, typ: typ}
	if n, e := strconv.Atoi(name); e == nil {
		o.num = n
		o.isNum = true
	}
	return o
}

// Int creates the object n of type IntType.
func Int(n int) Object {
	return Object{name: strconv.Itoa(n), typ: IntType, num: n, isNum: true}
}

func (o Object) Name() string { return o.name }
func (o Object) Type() string { return o.typ }
func (o Object) isArg()       {}

// Num returns the numeric key of o, if it has one.
func (o Object) Num() (int, bool) {
	return o.num, o.isNum
}

func (o Object) String() string {
	return o.name
}

// Type Placeholder is a named, typed variable which may only occur in
// operator schemas.
type Placeholder struct {
	name string
	typ  string
}

// Var creates a placeholder.
func Var(name, typ string) Placeholder {
	return Placeholder{name: name, typ: typ}
}

func (p Placeholder) Name() string { return p.name }
func (p Placeholder) Type() string { return p.typ }
func (p Placeholder) isArg()       {}

func (p Placeholder) String() string {
	return "?" + p.name
}

// Subst maps placeholders to objects.
type Subst map[Placeholder]Object

// Type Literal is a predicate applied to an ordered list of arguments with
// a polarity.  Neg literals are distinct literals, not the absence of the
// positive one.
type Literal struct {
	Pred string
	Args []Arg
	Neg  bool
}

// Lit creates a positive literal.
func Lit(pred string, args ...Arg) Literal {
	return Literal{Pred: pred, Args: args}
}

// Not returns the literal with opposite polarity.  The argument slice is
// shared.
func (l Literal) Not() Literal {
	l.Neg = !l.Neg
	return l
}

// IsGround returns true if every argument of l is an Object.
func (l Literal) IsGround() bool {
	for _, a := range l.Args {
		if _, ok := a.(Object); !ok {
			return false
		}
	}
	return true
}

// Placeholders appends the placeholders of l to dst in order of
// occurrence, skipping those already in dst.
func (l Literal) Placeholders(dst []Placeholder) []Placeholder {
outer:
	for _, a := range l.Args {
		v, ok := a.(Placeholder)
		if !ok {
			continue
		}
		for _, w := range dst {
			if w == v {
				continue outer
			}
		}
		dst = append(dst, v)
	}
	return dst
}

// Check checks that l is well formed.
func (l Literal) Check() error {
	if !IsAtom(l.Pred) {
		return fmt.Errorf("%w: %q", ErrPredicate, l.Pred)
	}
	for i, a := range l.Args {
		if a == nil {
			return fmt.Errorf("%s: arg %d: %w: nil", l.Pred, i, ErrArg)
		}
		if a.Name() == "" || a.Type() == "" {
			return fmt.Errorf("%s: arg %d: %w: empty name or type", l.Pred, i, ErrArg)
		}
	}
	return nil
}

// Subst returns l with placeholders replaced by their objects under b.
// Unbound placeholders are left in place.
func (l Literal) Subst(b Subst) Literal {
	args := make([]Arg, len(l.Args))
	for i, a := range l.Args {
		args[i] = a
		if v, ok := a.(Placeholder); ok {
			if o, ok := b[v]; ok {
				args[i] = o
			}
		}
	}
	return Literal{Pred: l.Pred, Args: args, Neg: l.Neg}
}

// Key returns the signature of l.  Two literals have equal keys iff they
// have equal predicates, arguments and polarity.  Each name is prefixed
// by its length, so no choice of names makes two signatures collide.
func (l Literal) Key() string {
	buf := make([]byte, 0, 16*(len(l.Args)+1))
	if l.Neg {
		buf = append(buf, '~')
	}
	buf = appendPart(buf, l.Pred)
	for _, a := range l.Args {
		if _, ok := a.(Placeholder); ok {
			buf = append(buf, '?')
		} else {
			buf = append(buf, '.')
		}
		buf = appendPart(buf, a.Type())
		buf = appendPart(buf, a.Name())
	}
	return string(buf)
}

func appendPart(buf []byte, s string) []byte {
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, ':')
	return append(buf, s...)
}

func (l Literal) String() string {
	var sb strings.Builder
	if l.Neg {
		sb.WriteByte('~')
	}
	sb.WriteString(l.Pred)
	sb.WriteByte('(')
	for i, a := range l.Args {
		if i != 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// IsAtom reports whether s can be used as a predicate or operator name:
// non-empty, no spaces, no parentheses, commas or a leading '~' or '?'.
func IsAtom(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '~' || s[0] == '?' {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '(' || r == ')' || r == ',' {
			return false
		}
	}
	return true
}
