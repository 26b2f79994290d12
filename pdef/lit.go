// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdef

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-air/gplan/term"
)

var (
	// ErrSyntax is returned for malformed literals.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknown is returned for undeclared objects and placeholders.
	ErrUnknown = errors.New("unknown name")
)

// scope resolves the argument names of literals.
type scope struct {
	objs map[string]term.Object
	vars map[string]term.Placeholder
}

// parse parses a literal.
func (s *scope) parse(src string) (term.Literal, error) {
	l := term.Literal{}
	str := strings.TrimSpace(src)
	if strings.HasPrefix(str, "~") {
		l.Neg = true
		str = strings.TrimSpace(str[1:])
	}
	open := strings.IndexByte(str, '(')
	if open < 0 {
		l.Pred = str
		return l, s.check(l, src)
	}
	if !strings.HasSuffix(str, ")") {
		return l, fmt.Errorf("%w: %q: missing ')'", ErrSyntax, src)
	}
	l.Pred = strings.TrimSpace(str[:open])
	body := strings.TrimSpace(str[open+1 : len(str)-1])
	if body == "" {
		return l, s.check(l, src)
	}
	for _, f := range strings.Split(body, ",") {
		a, e := s.arg(strings.TrimSpace(f), src)
		if e != nil {
			return l, e
		}
		l.Args = append(l.Args, a)
	}
	return l, s.check(l, src)
}

func (s *scope) check(l term.Literal, src string) error {
	if e := l.Check(); e != nil {
		return fmt.Errorf("%q: %w", src, e)
	}
	return nil
}

func (s *scope) arg(f, src string) (term.Arg, error) {
	if f == "" || strings.ContainsAny(f, "() \t") {
		return nil, fmt.Errorf("%w: %q: bad argument %q", ErrSyntax, src, f)
	}
	if name, ok := strings.CutPrefix(f, "?"); ok {
		v, ok := s.vars[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q: placeholder ?%s", ErrUnknown, src, name)
		}
		return v, nil
	}
	if o, ok := s.objs[f]; ok {
		return o, nil
	}
	if n, e := strconv.Atoi(f); e == nil {
		return term.Int(n), nil
	}
	return nil, fmt.Errorf("%w: %q: object %s", ErrUnknown, src, f)
}

// format writes a literal in the syntax accepted by parse.
func format(l term.Literal) string {
	var sb strings.Builder
	if l.Neg {
		sb.WriteByte('~')
	}
	sb.WriteString(l.Pred)
	sb.WriteByte('(')
	for i, a := range l.Args {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
