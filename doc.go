// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gplan provides a GraphPlan planner for STRIPS style problems.
//
// A Problem consists of typed objects, operator schemas (package op),
// an initial state and goals, all given as literals (package term).
// Solve builds a planning graph level by level and searches it backwards
// for a plan, a sequence of steps each of which is a set of actions which
// may execute in parallel.
//
// Solve returns 1 if a plan was found, -1 if no plan exists and 0 if
// the search was interrupted, following the result codes of package
// inter.
//
// Each Problem solves once.  Problems are independent of each other and
// may be solved concurrently.
package gplan
