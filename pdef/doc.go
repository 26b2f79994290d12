// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package pdef reads and writes planning problems as YAML documents.
//
// A document looks like
//
//	name: blocks
//	objects:
//	  - {name: A, type: Block}
//	  - {name: B, type: Block}
//	  - {int: 3}
//	ops:
//	  - name: move_to_table
//	    vars: {obj: Block, from: Block}
//	    pre: ["~equal(?obj, ?from)", "on(?obj, ?from)", "clear(?obj)"]
//	    add: ["on_table(?obj)", "clear(?from)"]
//	    del: ["on(?obj, ?from)"]
//	init: ["on(A, B)", "on_table(B)", "clear(A)"]
//	goal: ["on_table(A)"]
//
// Literals are written pred(arg, ...) with a leading '~' for negative
// literals.  An argument ?v is the placeholder v, whose type is given by
// the operator's vars.  Other arguments name objects; an integer which
// names no object denotes the integer constant.
package pdef
