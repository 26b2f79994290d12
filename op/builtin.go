// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package op

import (
	"fmt"
	"strings"

	"github.com/go-air/gplan/term"
)

// Builtin predicate names.
const (
	Equal     = "equal"
	NotEqual  = "not_equal"
	LessThan  = "less_than"
	LessEqual = "less_equal"
	Sum       = "sum"
)

// IsBuiltin returns whether pred names a builtin predicate.
func IsBuiltin(pred string) bool {
	return arity(pred) != 0
}

func arity(pred string) int {
	switch pred {
	case Equal, NotEqual, LessThan, LessEqual:
		return 2
	case Sum:
		return 3
	default:
		return 0
	}
}

// IsNumeric returns whether pred requires arguments with a numeric or
// otherwise ordered key.
func IsNumeric(pred string) bool {
	switch pred {
	case LessThan, LessEqual, Sum:
		return true
	}
	return false
}

// Compare compares the keys of a and b.  Two numeric objects compare by
// value, two non-numeric objects by name.  ok is false for a mixed pair.
func Compare(a, b term.Object) (c int, ok bool) {
	an, aok := a.Num()
	bn, bok := b.Num()
	switch {
	case aok && bok:
		switch {
		case an < bn:
			return -1, true
		case an > bn:
			return 1, true
		}
		return 0, true
	case !aok && !bok:
		return strings.Compare(a.Name(), b.Name()), true
	}
	return 0, false
}

// eval evaluates a builtin on the objects args.  Comparisons which are
// not defined are false under either polarity.
func eval(pred string, neg bool, args []term.Object) bool {
	var r bool
	switch pred {
	case Equal:
		r = args[0] == args[1]
	case NotEqual:
		r = args[0] != args[1]
	case LessThan, LessEqual:
		c, ok := Compare(args[0], args[1])
		if !ok {
			return false
		}
		if pred == LessThan {
			r = c < 0
		} else {
			r = c <= 0
		}
	case Sum:
		a, aok := args[0].Num()
		b, bok := args[1].Num()
		c, cok := args[2].Num()
		if !aok || !bok || !cok {
			return false
		}
		r = a+b == c
	default:
		panic(fmt.Sprintf("not a builtin: %s", pred))
	}
	return r != neg
}

// Eval evaluates the ground builtin literal l.
func Eval(l term.Literal) (bool, error) {
	if !IsBuiltin(l.Pred) || len(l.Args) != arity(l.Pred) {
		return false, fmt.Errorf("%w: %s", ErrBuiltin, l)
	}
	args := make([]term.Object, len(l.Args))
	for i, a := range l.Args {
		o, ok := a.(term.Object)
		if !ok {
			return false, fmt.Errorf("eval %s: %w", l, term.ErrNotGround)
		}
		args[i] = o
	}
	return eval(l.Pred, l.Neg, args), nil
}
