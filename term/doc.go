// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package term contains the objects, placeholders and literals from which
// planning problems are built.
//
// Ground literals are interned in a Table.  The Table assigns each distinct
// (predicate, arguments, polarity) signature a Prop, a small strictly
// increasing integer.  All comparisons of ground literals in the planner are
// comparisons of Props.
//
// Literals which contain a Placeholder are templates.  They are plain
// values, never interned, and must not be compared by Prop.
package term
