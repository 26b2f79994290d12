// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gplan

import (
	"github.com/go-air/gplan/internal/pg"
)

// graph implements inter.Graph.
type graph struct {
	g *pg.Graph
}

func (v *graph) Levels() int {
	return v.g.Depth() + 1
}

func (v *graph) Props(i int) []string {
	pl := v.g.Props(i)
	res := make([]string, len(pl.Nodes))
	for j := range pl.Nodes {
		res[j] = v.g.Tab.Lit(pl.Nodes[j].Prop).String()
	}
	return res
}

func (v *graph) Actions(i int) []string {
	if i >= v.g.Depth() {
		return nil
	}
	al := v.g.Acts(i)
	res := make([]string, len(al.Nodes))
	for j := range al.Nodes {
		res[j] = v.g.ActString(i, int32(j))
	}
	return res
}

func (v *graph) PropMutexCount(i int) int {
	return v.g.Props(i).MutexPairs()
}

func (v *graph) ActionMutexCount(i int) int {
	if i >= v.g.Depth() {
		return 0
	}
	return v.g.Acts(i).MutexPairs()
}

func (v *graph) Nogoods(i int) int {
	return v.g.Nogoods(i)
}
