// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench runs planning problems in batches.
//
// A Suite is a set of problem files, selected by walking directories
// and filtering file names with a pattern.  A Run solves every instance
// of a suite in process, with
//
//  1. a per-instance timeout,
//  2. a global timeout bounding the whole run, and
//  3. a bounded number of concurrent jobs.
//
// Each instance yields an InstRun recording the result code, the number
// of graph levels, the plan length and the time taken.  Runs are stored
// and read back as YAML, and may publish prometheus metrics while they
// progress.
package bench
