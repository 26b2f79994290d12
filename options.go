// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gplan

import "go.uber.org/zap"

// Option configures a Problem.
type Option func(*Problem)

// WithLogger sets the logger.  Graph levels and search outcomes are
// logged at Debug, the result of a solve at Info.
func WithLogger(log *zap.Logger) Option {
	return func(p *Problem) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMaxLevels bounds the number of graph levels built.  n <= 0 means no
// bound.
func WithMaxLevels(n int) Option {
	return func(p *Problem) {
		p.maxLevels = n
	}
}
