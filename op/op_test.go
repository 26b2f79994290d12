// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package op

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gplan/term"
)

var (
	block         = "Block"
	vObj          = term.Var("obj", block)
	vFrom         = term.Var("from", block)
	vTo           = term.Var("to", block)
	bA, bB, bC    = term.Obj("A", block), term.Obj("B", block), term.Obj("C", block)
	blockInsts    = map[string][]term.Object{block: {bA, bB, bC}}
	vOld, vNew    = term.Var("old", term.IntType), term.Var("new", term.IntType)
	adderInsts    = map[string][]term.Object{term.IntType: {term.Int(0), term.Int(1), term.Int(2), term.Int(3)}}
	moveOp        = Must("move",
		[]term.Literal{
			term.Lit(Equal, vObj, vFrom).Not(),
			term.Lit(Equal, vObj, vTo).Not(),
			term.Lit(Equal, vFrom, vTo).Not(),
			term.Lit("on", vObj, vFrom),
			term.Lit("clear", vObj),
			term.Lit("clear", vTo)},
		[]term.Literal{term.Lit("on", vObj, vTo), term.Lit("clear", vFrom)},
		[]term.Literal{term.Lit("on", vObj, vFrom), term.Lit("clear", vTo)})
)

func addOne() *Op {
	return Must("add1",
		[]term.Literal{term.Lit("got", vOld), term.Lit(Sum, vOld, term.Int(1), vNew)},
		[]term.Literal{term.Lit("got", vNew)},
		[]term.Literal{term.Lit("got", vOld)})
}

func TestOpParams(t *testing.T) {
	assert.Equal(t, []term.Placeholder{vObj, vFrom, vTo}, moveOp.Params)
	assert.Len(t, moveOp.Builtins(), 3)
	assert.Len(t, moveOp.Conds(), 3)
	assert.Equal(t, []string{block}, moveOp.Types())
	assert.Equal(t, "move(?obj,?from,?to)", moveOp.String())
}

func TestOpUnbound(t *testing.T) {
	_, e := New("bad",
		[]term.Literal{term.Lit("clear", vObj)},
		[]term.Literal{term.Lit("on", vObj, vTo)},
		nil)
	require.ErrorIs(t, e, ErrUnbound)

	_, e = New("bad", []term.Literal{term.Lit("clear", vObj)}, nil,
		[]term.Literal{term.Lit("clear", vFrom)})
	require.ErrorIs(t, e, ErrUnbound)

	// bound only by a builtin is still bound
	_, e = New("ok", []term.Literal{term.Lit(NotEqual, vObj, bA)},
		[]term.Literal{term.Lit("at", vObj)}, nil)
	require.NoError(t, e)
}

func TestOpDefinitionErrors(t *testing.T) {
	_, e := New("", nil, nil, nil)
	assert.ErrorIs(t, e, ErrName)
	_, e = New("x", []term.Literal{term.Lit(Sum, vOld, vNew)}, nil, nil)
	assert.ErrorIs(t, e, ErrBuiltin)
	_, e = New("x", []term.Literal{term.Lit("got", vOld)}, []term.Literal{term.Lit(Equal, vOld, vOld)}, nil)
	assert.ErrorIs(t, e, ErrBuiltin)
	_, e = New("x", []term.Literal{term.Lit("bad pred", vOld)}, nil, nil)
	assert.ErrorIs(t, e, term.ErrPredicate)
	assert.Panics(t, func() { Must("", nil, nil, nil) })
}

func TestBindingsBuiltinPruning(t *testing.T) {
	o := addOne()
	var got [][2]int
	for b := range o.Bindings(adderInsts) {
		old, _ := b[vOld].Num()
		nw, _ := b[vNew].Num()
		got = append(got, [2]int{old, nw})
	}
	want := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("add1 bindings (-want +got):\n%s", diff)
	}
}

func TestBindingsDistinct(t *testing.T) {
	n := 0
	for b := range moveOp.Bindings(blockInsts) {
		if b[vObj] == b[vFrom] || b[vObj] == b[vTo] || b[vFrom] == b[vTo] {
			t.Errorf("binding violates not equal: %v", b)
		}
		n++
	}
	assert.Equal(t, 6, n) // 3!
}

func TestBindingsStop(t *testing.T) {
	n := 0
	for range moveOp.Bindings(blockInsts) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestBindingsMissingType(t *testing.T) {
	n := 0
	for range moveOp.Bindings(map[string][]term.Object{}) {
		n++
	}
	assert.Zero(t, n)
}

func TestBuiltinEval(t *testing.T) {
	for _, tc := range []struct {
		l    term.Literal
		want bool
	}{
		{term.Lit(Equal, bA, bA), true},
		{term.Lit(Equal, bA, term.Obj("A", "Other")), false},
		{term.Lit(NotEqual, bA, bB), true},
		{term.Lit(Equal, bA, bB).Not(), true},
		{term.Lit(LessThan, term.Int(2), term.Int(10)), true},
		{term.Lit(LessThan, term.Obj("disk1", "o"), term.Obj("rod1", "o")), true},
		{term.Lit(LessEqual, term.Int(3), term.Int(3)), true},
		{term.Lit(LessThan, term.Int(3), term.Int(3)), false},
		{term.Lit(LessThan, term.Int(3), term.Int(3)).Not(), true},
		{term.Lit(LessThan, term.Int(1), bA), false},
		{term.Lit(LessThan, term.Int(1), bA).Not(), false},
		{term.Lit(Sum, term.Int(1), term.Int(2), term.Int(3)), true},
		{term.Lit(Sum, term.Int(3), term.Int(1), term.Int(3)), false},
		{term.Lit(Sum, term.Int(3), term.Int(1), term.Int(3)).Not(), true},
	} {
		got, e := Eval(tc.l)
		require.NoError(t, e)
		assert.Equal(t, tc.want, got, "%s", tc.l)
	}
	_, e := Eval(term.Lit("on", bA, bB))
	assert.ErrorIs(t, e, ErrBuiltin)
	_, e = Eval(term.Lit(Equal, bA, vObj))
	assert.ErrorIs(t, e, term.ErrNotGround)
}

// level is a PropLevel over a fixed set of props.
type level struct {
	nodes map[term.Prop]int32
	mutex map[[2]int32]bool
}

func (l *level) Node(p term.Prop) (int32, bool) {
	n, ok := l.nodes[p]
	return n, ok
}

func (l *level) Mutex(i, j int32) bool {
	return l.mutex[[2]int32{i, j}] || l.mutex[[2]int32{j, i}]
}

func TestBindprops(t *testing.T) {
	tab := term.NewTable()
	lvl := &level{nodes: make(map[term.Prop]int32), mutex: make(map[[2]int32]bool)}
	add := func(l term.Literal) int32 {
		p, e := tab.Intern(l)
		require.NoError(t, e)
		n := int32(len(lvl.nodes))
		lvl.nodes[p] = n
		return n
	}
	add(term.Lit("on", bB, bA))
	add(term.Lit("on_table", bA))
	add(term.Lit("on_table", bC))
	clearB := add(term.Lit("clear", bB))
	clearC := add(term.Lit("clear", bC))

	bps := moveOp.Bindprops(blockInsts, tab, lvl)
	require.Len(t, bps, 1)
	assert.Equal(t, term.Subst{vObj: bB, vFrom: bA, vTo: bC}, bps[0].Subst)
	assert.Len(t, bps[0].Nodes, 3)

	lvl.mutex[[2]int32{clearB, clearC}] = true
	assert.Empty(t, moveOp.Bindprops(blockInsts, tab, lvl))
}

func TestBindpropsDedup(t *testing.T) {
	tab := term.NewTable()
	p, _ := tab.Intern(term.Lit("got", term.Int(0)))
	lvl := &level{nodes: map[term.Prop]int32{p: 0}}
	twice := Must("twice",
		[]term.Literal{term.Lit("got", vOld), term.Lit("got", vOld)},
		[]term.Literal{term.Lit("done")}, nil)
	bps := twice.Bindprops(adderInsts, tab, lvl)
	require.Len(t, bps, 1)
	assert.Equal(t, []int32{0}, bps[0].Nodes)
}
