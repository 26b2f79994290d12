// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/term"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Gen creates a problem.
type Gen func(opts ...gplan.Option) *gplan.Problem

var registry = map[string]Gen{
	"cake":         Cake,
	"adder":        func(opts ...gplan.Option) *gplan.Problem { return Adder(3, opts...) },
	"blocks1":      Blocks1,
	"blocks2":      Blocks2,
	"blocks3":      Blocks3,
	"blocks-cycle": BlocksCycle,
	"rocket":       Rocket,
	"hanoi":        func(opts ...gplan.Option) *gplan.Problem { return Hanoi(3, opts...) },
	"fox":          Fox,
	"fixit":        Fixit,
	"missionaries": Missionaries,
}

// Names returns the names of the registered generators, sorted.
func Names() []string {
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Lookup returns the generator registered as name.
func Lookup(name string) (Gen, bool) {
	g, ok := registry[name]
	return g, ok
}

func must(p *gplan.Problem, e error) *gplan.Problem {
	if e != nil {
		panic(e)
	}
	return p
}

// shorthands
var lit = term.Lit

func lits(ls ...term.Literal) []term.Literal {
	return ls
}
