// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

// actionMutex computes the mutex relation of action level lvl.  Two
// distinct actions are mutex if one deletes what the other adds
// (inconsistent effects), one deletes a precondition of the other
// (interference), or some of their preconditions are mutex at
// proposition level lvl (competing needs).
func (g *Graph) actionMutex(lvl int) {
	al := g.acts[lvl]
	pre := g.props[lvl]
	post := g.props[lvl+1]
	n := len(al.Nodes)
	for i := range al.Nodes {
		al.Nodes[i].excl = newSet(n)
	}
	mark := func(a, b int32) {
		if a == b {
			return
		}
		al.Nodes[a].excl.add(b)
		al.Nodes[b].excl.add(a)
	}
	for i := range al.Nodes {
		a := int32(i)
		an := &al.Nodes[i]
		// inconsistent effects
		for _, d := range an.Del {
			for _, b := range post.Nodes[d].Adders {
				mark(a, b)
			}
		}
		// interference
		for _, p := range an.dels {
			if q, ok := pre.idx[p]; ok {
				for _, b := range pre.Nodes[q].Users {
					mark(a, b)
				}
			}
		}
		// competing needs
		for _, p := range an.Pre {
			pre.Nodes[p].excl.each(func(q int32) {
				for _, b := range pre.Nodes[q].Users {
					mark(a, b)
				}
			})
		}
	}
	cnt := 0
	for i := range al.Nodes {
		cnt += al.Nodes[i].excl.count()
	}
	al.nMutex = cnt / 2
}

// propMutex computes the mutex relation of proposition level lvl > 0.
// Two distinct propositions are mutex iff every adder of the one is
// mutex with every adder of the other.
func (g *Graph) propMutex(lvl int) {
	pl := g.props[lvl]
	al := g.acts[lvl-1]
	nA := len(al.Nodes)
	// ok[i] holds the actions which are not mutex with some adder of i,
	// the adders themselves included.
	ok := make([]set, len(pl.Nodes))
	for i := range pl.Nodes {
		s := newSet(nA)
		for _, a := range pl.Nodes[i].Adders {
			s.orNot(al.Nodes[a].excl, nA)
		}
		ok[i] = s
	}
	cnt := 0
	for i := range pl.Nodes {
		for j := i + 1; j < len(pl.Nodes); j++ {
			compat := false
			for _, b := range pl.Nodes[j].Adders {
				if ok[i].has(b) {
					compat = true
					break
				}
			}
			if compat {
				continue
			}
			pl.Nodes[i].excl.add(int32(j))
			pl.Nodes[j].excl.add(int32(i))
			cnt++
		}
	}
	pl.nMutex = cnt
}
