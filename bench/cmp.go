// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"time"
)

// TotalResult counts the instance runs of r whose result satisfies filt.
func TotalResult(r *Run, filt func(ir *InstRun) bool) int {
	ttl := 0
	for _, ir := range r.InstRuns {
		if filt(ir) {
			ttl++
		}
	}
	return ttl
}

// SolveTotal gives the total number of solved instances for the run r,
// plans found and unsolvable proofs alike.
func SolveTotal(r *Run) int {
	return TotalResult(r, func(ir *InstRun) bool { return ir.Result != 0 })
}

func FoundTotal(r *Run) int {
	return TotalResult(r, func(ir *InstRun) bool { return ir.Result == 1 })
}

func UnsolvableTotal(r *Run) int {
	return TotalResult(r, func(ir *InstRun) bool { return ir.Result == -1 })
}

// UnknownTotal counts instances without a result, failed ones included.
func UnknownTotal(r *Run) int {
	return TotalResult(r, func(ir *InstRun) bool { return ir.Result == 0 })
}

func ErrorTotal(r *Run) int {
	return TotalResult(r, (*InstRun).Failed)
}

// Times gives the total time spent on instances of r, in seconds.
func Times(r *Run) float64 {
	var d time.Duration
	for _, ir := range r.InstRuns {
		d += ir.Dur
	}
	return d.Seconds()
}

// SolvePortion gives the portion of instances in r solved.
func SolvePortion(r *Run) float64 {
	if len(r.InstRuns) == 0 {
		return 0
	}
	return float64(SolveTotal(r)) / float64(len(r.InstRuns))
}

// SolveRate gives the number of solved instances per unit of instance
// time.
//
// SolveRate is only valid w.r.t. an instance/global timeout because
// unsolved instances have unknown time.  SolveRate counts unsolved time.
func SolveRate(r *Run, unit time.Duration) float64 {
	t := Times(r)
	if t == 0 {
		return 0
	}
	return float64(SolveTotal(r)) / (t / unit.Seconds())
}

// Summary gives a one line account of r.
func Summary(r *Run) string {
	return fmt.Sprintf("%s: %d insts, %d found, %d unsolvable, %d unknown, %d errors, solved %.1f%% in %s",
		r.Name, len(r.InstRuns), FoundTotal(r), UnsolvableTotal(r), UnknownTotal(r),
		ErrorTotal(r), 100*SolvePortion(r), r.Dur.Round(time.Millisecond))
}

// Diff pairs the instance runs of a and b on the same path whose results
// differ.
type Diff struct {
	Path string
	A, B *InstRun
}

// Compare returns the instances a and b have in common on which their
// results differ, in the order of a.
func Compare(a, b *Run) []Diff {
	bs := make(map[string]*InstRun, len(b.InstRuns))
	for _, ir := range b.InstRuns {
		bs[ir.Path] = ir
	}
	var res []Diff
	for _, x := range a.InstRuns {
		y, ok := bs[x.Path]
		if !ok || x.Result == y.Result {
			continue
		}
		res = append(res, Diff{Path: x.Path, A: x, B: y})
	}
	return res
}
