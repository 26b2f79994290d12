// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/gen"
	"github.com/go-air/gplan/inter"
)

var expect = map[string]struct {
	res   int
	steps int // -1: any
	slow  bool
}{
	"cake":         {inter.Found, 2, false},
	"adder":        {inter.Found, 3, false},
	"blocks1":      {inter.Found, -1, false},
	"blocks2":      {inter.Found, -1, false},
	"blocks3":      {inter.Found, -1, false},
	"blocks-cycle": {inter.Unsolvable, -1, false},
	"rocket":       {inter.Found, -1, false},
	"hanoi":        {inter.Found, -1, false},
	"fox":          {inter.Found, -1, false},
	"fixit":        {inter.Found, -1, true},
	"missionaries": {inter.Found, 11, true},
}

func TestGenerators(t *testing.T) {
	require.Len(t, gen.Names(), len(expect))
	for _, name := range gen.Names() {
		t.Run(name, func(t *testing.T) {
			want, ok := expect[name]
			require.True(t, ok)
			if want.slow && testing.Short() {
				t.Skip("slow")
			}
			g, ok := gen.Lookup(name)
			require.True(t, ok)
			p := g()
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			res, e := p.Solve(ctx)
			require.NoError(t, e)
			require.Equal(t, want.res, res)
			if res != inter.Found {
				assert.Nil(t, p.Plan())
				return
			}
			plan := p.Plan()
			if want.steps >= 0 {
				assert.Len(t, plan, want.steps)
			}
			assert.NoError(t, plan.Check(p.Init, p.Goals), "plan:\n%s", plan)
		})
	}
}

func TestLookupMissing(t *testing.T) {
	_, ok := gen.Lookup("nope")
	assert.False(t, ok)
}

func TestAdderSizes(t *testing.T) {
	for n := 0; n < 5; n++ {
		p := gen.Adder(n)
		res, e := p.Solve(context.Background())
		require.NoError(t, e)
		require.Equal(t, inter.Found, res)
		assert.Len(t, p.Plan(), n)
		assert.Equal(t, n, p.Plan().Len())
	}
}

func TestRandBlocks(t *testing.T) {
	gen.Seed(7)
	for i := 0; i < 3; i++ {
		p := gen.RandBlocks(4)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		res, e := p.Solve(ctx)
		cancel()
		require.NoError(t, e)
		require.Equal(t, inter.Found, res)
		assert.NoError(t, p.Plan().Check(p.Init, p.Goals))
	}
}

func TestTowers(t *testing.T) {
	p := gen.Blocks1()
	var got []string
	for _, l := range p.Init {
		got = append(got, l.String())
	}
	assert.ElementsMatch(t,
		[]string{"on_table(A)", "on(B,A)", "clear(B)", "on_table(C)", "clear(C)"},
		got)
}

func TestGenOptions(t *testing.T) {
	p := gen.Adder(3, gplan.WithMaxLevels(1))
	res, e := p.Solve(context.Background())
	assert.Equal(t, inter.Unknown, res)
	assert.ErrorIs(t, e, gplan.ErrMaxLevels)
}
