// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"sort"
)

// ErrEmpty is returned when a suite would contain no instances.
var ErrEmpty = errors.New("no instances")

// Suite is a set of problem files.
type Suite struct {
	Pattern string   `yaml:"pattern,omitempty"`
	Dirs    []string `yaml:"dirs"`
	Insts   []string `yaml:"insts"`
}

// Len returns the number of instances of s.
func (s *Suite) Len() int {
	return len(s.Insts)
}

// OpenSuite selects up to n problem files matching pattern under dirs,
// as MatchSelect does.
func OpenSuite(pattern string, n int, dirs ...string) (*Suite, error) {
	insts, e := MatchSelect(pattern, n, dirs...)
	if e != nil {
		return nil, e
	}
	if len(insts) == 0 {
		return nil, fmt.Errorf("%w: %q in %v", ErrEmpty, pattern, dirs)
	}
	return &Suite{Pattern: pattern, Dirs: dirs, Insts: insts}, nil
}

type walk struct {
	pattern string
	Collect []string
}

func (w *walk) Walk(p string, d fs.DirEntry, e error) error {
	if e != nil {
		return e
	}
	if d.IsDir() {
		return nil
	}
	if w.pattern == "" {
		w.Collect = append(w.Collect, p)
		return nil
	}
	matched, e := filepath.Match(w.pattern, d.Name())
	if e != nil {
		return e
	}
	if matched {
		w.Collect = append(w.Collect, p)
	}
	return nil
}

// Select walks all the directories listed in dirs and selects up to n
// files randomly from all files found.
func Select(n int, dirs ...string) ([]string, error) {
	return MatchSelect("", n, dirs...)
}

// MatchSelect is like Select but filters file names with filepath.Match
// using pattern.  If n <= 0 or there are no more than n files, all of
// them are selected.  The result is sorted.
func MatchSelect(pattern string, n int, dirs ...string) ([]string, error) {
	w := &walk{pattern: pattern}
	for _, p := range dirs {
		if e := filepath.WalkDir(p, w.Walk); e != nil {
			return nil, fmt.Errorf("walk %s: %w", p, e)
		}
	}
	insts := w.Collect
	if n > 0 && n < len(insts) {
		sel := make([]string, 0, n)
		for len(sel) < n {
			e := len(insts) - 1
			c := rand.Intn(e + 1)
			insts[c], insts[e] = insts[e], insts[c]
			sel = append(sel, insts[e])
			insts = insts[:e]
		}
		insts = sel
	}
	sort.Strings(insts)
	return insts, nil
}
