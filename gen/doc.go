// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for classic planning problems.
//
// Each generator returns a fresh, unsolved gplan.Problem.  Generators are
// also registered by name for use by commands, see Names and Lookup.
package gen
