// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package op provides operator schemas and the enumeration of their
// groundings.
//
// An operator's parameters are the placeholders of its preconditions, in
// order of first occurrence.  Preconditions whose predicate is a builtin
// (equal, not_equal, less_than, less_equal, sum) are not propositions; they
// are evaluated while bindings are generated, as soon as the parameters
// they mention are bound.
package op
