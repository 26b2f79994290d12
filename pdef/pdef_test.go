// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdef

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/gen"
	"github.com/go-air/gplan/inter"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

const cakeDoc = `
name: cake
objects:
  - {name: cake, type: Cake}
ops:
  - name: eat
    pre: [have(cake)]
    add: [eaten(cake), ~have(cake)]
    del: [have(cake)]
  - name: bake
    pre: ["~have(cake)"]
    add: [have(cake)]
    del: ["~have(cake)"]
init: [have(cake)]
goal: [have(cake), eaten(cake)]
`

func TestReadCake(t *testing.T) {
	p, e := Read(strings.NewReader(cakeDoc))
	require.NoError(t, e)
	assert.Equal(t, "cake", p.Name)
	require.Len(t, p.Ops, 2)
	assert.True(t, p.Ops[1].Pre[0].Neg)
	res, e := p.Solve(context.Background())
	require.NoError(t, e)
	require.Equal(t, inter.Found, res)
	assert.Equal(t, [][]string{{"eat()"}, {"bake()"}}, p.Plan().Strings())
}

func TestParse(t *testing.T) {
	x := term.Var("x", "T")
	a := term.Obj("a", "T")
	s := &scope{
		objs: map[string]term.Object{"a": a},
		vars: map[string]term.Placeholder{"x": x}}
	for _, tc := range []struct {
		src  string
		want term.Literal
	}{
		{"p(a)", term.Lit("p", a)},
		{" ~ p( ?x ,a ) ", term.Lit("p", x, a).Not()},
		{"q", term.Lit("q")},
		{"q()", term.Lit("q")},
		{"sum(?x, 1, 2)", term.Lit(op.Sum, x, term.Int(1), term.Int(2))},
	} {
		got, e := s.parse(tc.src)
		require.NoError(t, e, tc.src)
		assert.Equal(t, tc.want.Key(), got.Key(), tc.src)
	}
	for _, tc := range []struct {
		src  string
		want error
	}{
		{"p(a", ErrSyntax},
		{"p(a,)", ErrSyntax},
		{"p(?y)", ErrUnknown},
		{"p(b)", ErrUnknown},
		{"(a)", term.ErrPredicate},
		{"", term.ErrPredicate},
	} {
		_, e := s.parse(tc.src)
		assert.ErrorIs(t, e, tc.want, tc.src)
	}
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		doc  string
		want error
	}{
		{"name: x\nobjects: [{name: a, type: T}, {name: a, type: U}]\n", ErrDuplicate},
		{"name: x\nobjects: [{name: a}]\n", term.ErrArg},
		{"name: x\nops: [{name: o, pre: [\"p(?v)\"]}]\n", ErrUnknown},
		{"name: x\nobjects: [{name: a, type: T}]\nops: [{name: o, vars: {v: T}, pre: [\"p(?v)\"], add: [\"q(?w)\"]}]\n", ErrUnknown},
		{"name: x\nobjects: [{name: a, type: T}]\nops: [{name: o, vars: {v: T, w: T}, pre: [\"p(?v)\"], add: [\"q(?w)\"]}]\n", op.ErrUnbound},
		{"name: x\ninit: [\"p(b)\"]\n", ErrUnknown},
		{"name: x\nobjects: [{name: a, type: T}]\nops: [{name: o, vars: {v: U}, pre: [\"p(?v)\"]}]\n", gplan.ErrNoInstances},
	} {
		_, e := Read(strings.NewReader(tc.doc))
		assert.ErrorIs(t, e, tc.want, tc.doc)
	}
	_, e := Read(strings.NewReader("name: x\nbogus: 1\n"))
	assert.Error(t, e)
}

func TestErrorPosition(t *testing.T) {
	doc := "name: x\nobjects: [{name: a, type: T}]\nops: [{name: move, vars: {v: T}, pre: [\"p(?v)\", \"q(?v\"]}]\n"
	_, e := Read(strings.NewReader(doc))
	require.Error(t, e)
	assert.Contains(t, e.Error(), `op "move": pre[1]`)
}

func literals(ls []term.Literal) []string {
	res := make([]string, len(ls))
	for i, l := range ls {
		res[i] = l.String()
	}
	return res
}

func TestRoundTrip(t *testing.T) {
	for _, name := range gen.Names() {
		t.Run(name, func(t *testing.T) {
			g, _ := gen.Lookup(name)
			p := g()
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, p))
			q, e := Read(&buf)
			require.NoError(t, e, buf.String())

			assert.Equal(t, p.Name, q.Name)
			assert.Equal(t, p.Objects, q.Objects)
			require.Len(t, q.Ops, len(p.Ops))
			for i := range p.Ops {
				assert.Equal(t, p.Ops[i].String(), q.Ops[i].String())
				assert.Equal(t, p.Ops[i].Params, q.Ops[i].Params)
				for _, ls := range [][2][]term.Literal{
					{p.Ops[i].Pre, q.Ops[i].Pre},
					{p.Ops[i].Add, q.Ops[i].Add},
					{p.Ops[i].Del, q.Ops[i].Del}} {
					if diff := cmp.Diff(literals(ls[0]), literals(ls[1])); diff != "" {
						t.Errorf("op %s (-want +got):\n%s", p.Ops[i].Name, diff)
					}
				}
			}
			assert.Equal(t, literals(p.Init), literals(q.Init))
			assert.Equal(t, literals(p.Goals), literals(q.Goals))
		})
	}
}

func TestRoundTripSolves(t *testing.T) {
	p := gen.Blocks1()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p))
	q, e := Read(&buf)
	require.NoError(t, e)
	_, e = p.Solve(context.Background())
	require.NoError(t, e)
	_, e = q.Solve(context.Background())
	require.NoError(t, e)
	assert.Equal(t, p.Plan().Strings(), q.Plan().Strings())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, base := range []string{"cake.yaml", "cake.yaml.gz"} {
		path := filepath.Join(dir, base)
		require.NoError(t, WriteFile(path, gen.Cake()))
		p, e := ReadFile(path)
		require.NoError(t, e)
		assert.Equal(t, "cake", p.Name)
		assert.Len(t, p.Ops, 2)
	}
	_, e := ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, e)
}
