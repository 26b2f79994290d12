// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter holds the small interfaces composed by planners and their
// drivers.
package inter

import (
	"context"
	"time"
)

// Result codes returned by Solve and friends.
//
//	1  a plan was found
//	0  the search was interrupted
//	-1 no plan exists
const (
	Found      = 1
	Unknown    = 0
	Unsolvable = -1
)

// Interface Solvable encapsulates a planning procedure which may run for
// a long time.  Solve returns a result code; the error is non-nil only
// for usage errors or when the search is interrupted.
type Solvable interface {
	Solve(ctx context.Context) (int, error)
}

// Interface GoSolvable encapsulates a handle on a Solve running in its
// own goroutine.
type GoSolvable interface {
	GoSolve() (Solve, error)
}

// Interface Solve controls a background solve.
type Solve interface {
	// Test returns the result and true if the solve finished, and 0 and
	// false otherwise.
	Test() (int, bool)

	// Try waits at most d for a result, stopping the solve otherwise.
	Try(d time.Duration) int

	// Wait waits for the result.
	Wait() int

	// Stop stops the solve and returns its result, which is 0 unless the
	// solve finished before it was stopped.
	Stop() int

	// Err returns the error of the finished solve, nil before it
	// finishes.
	Err() error
}

// Interface Graph gives read access to a planning graph.  Level i of a
// graph consists of proposition level i and, for i < Levels()-1, action
// level i.
type Graph interface {
	Levels() int

	// Props returns the propositions of level i.
	Props(i int) []string

	// Actions returns the actions of level i, no-ops included.
	Actions(i int) []string

	// PropMutexCount returns the number of mutex pairs of propositions at
	// level i.
	PropMutexCount(i int) int

	// ActionMutexCount returns the number of mutex pairs of actions at
	// level i.
	ActionMutexCount(i int) int

	// Nogoods returns the number of goal sets recorded unsolvable at
	// level i.
	Nogoods(i int) int
}

// Interface Planner is a Solvable with access to its graph.
type Planner interface {
	Solvable
	GoSolvable
	Graph() Graph
}
