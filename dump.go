// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gplan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
)

// ErrNotSolved is returned by Dump before a solve has finished.
var ErrNotSolved = errors.New("problem not solved")

// Dump writes the planning graph of the finished solve to w: for each
// level its propositions with their numbers and mutex partners, then its
// actions with their mutex counts.
func (p *Problem) Dump(w io.Writer) error {
	p.mu.Lock()
	g, done := p.g, p.done
	p.mu.Unlock()
	if !done {
		return ErrNotSolved
	}
	bw := bufio.NewWriter(w)
	for i := 0; i <= g.Depth(); i++ {
		pl := g.Props(i)
		fmt.Fprintf(bw, "**************** Level %d ****************\n", i)
		fmt.Fprintf(bw, "Proposition nodes: (%d) mutex pairs: %d nogoods: %d\n", pl.Len(), pl.MutexPairs(), g.Nogoods(i))
		order := make([]int32, pl.Len())
		for j := range order {
			order[j] = int32(j)
		}
		slices.SortFunc(order, func(a, b int32) int {
			return int(pl.Nodes[a].Prop) - int(pl.Nodes[b].Prop)
		})
		for _, j := range order {
			fmt.Fprintf(bw, "  %s\n", g.Tab.String(pl.Nodes[j].Prop))
			ex := pl.Excludes(j)
			if len(ex) == 0 {
				continue
			}
			fmt.Fprintf(bw, "    excl (%d):", len(ex))
			for _, k := range ex {
				fmt.Fprintf(bw, " %d", pl.Nodes[k].Prop)
			}
			fmt.Fprintln(bw)
		}
		if i == g.Depth() {
			continue
		}
		al := g.Acts(i)
		fmt.Fprintf(bw, "Action nodes: (%d) mutex pairs: %d\n", len(al.Nodes), al.MutexPairs())
		for j := range al.Nodes {
			fmt.Fprintf(bw, "  %s", g.ActString(i, int32(j)))
			if n := len(al.Excludes(int32(j))); n > 0 {
				fmt.Fprintf(bw, "  excl (%d)", n)
			}
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}
