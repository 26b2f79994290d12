// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import "math/bits"

// Type set is a fixed capacity bit set of node indices within one level.
type set []uint64

func newSet(n int) set {
	return make(set, (n+63)/64)
}

func (s set) add(i int32) {
	s[i>>6] |= 1 << uint(i&63)
}

func (s set) has(i int32) bool {
	w := int(i >> 6)
	if w >= len(s) {
		return false
	}
	return s[w]&(1<<uint(i&63)) != 0
}

func (s set) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// each calls f with each member of s in increasing order.
func (s set) each(f func(i int32)) {
	for wi, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			f(int32(wi<<6 + b))
			w &= w - 1
		}
	}
}

// orNot sets s to s | ^t, restricted to the first n bits.
func (s set) orNot(t set, n int) {
	for i := range s {
		s[i] |= ^t[i]
	}
	if r := n & 63; r != 0 && len(s) > 0 {
		s[len(s)-1] &= (1 << uint(r)) - 1
	}
}
