// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pg

import (
	"context"
	"time"
)

// Type Ctl is a handle on a solve running in its own goroutine.
type Ctl struct {
	cancel context.CancelFunc
	done   chan struct{}
	res    int
	err    error
}

// Go runs f in a new goroutine under a context derived from ctx and
// returns a handle on it.
func Go(ctx context.Context, f func(context.Context) (int, error)) *Ctl {
	ctx, cancel := context.WithCancel(ctx)
	c := &Ctl{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		defer cancel()
		c.res, c.err = f(ctx)
	}()
	return c
}

// Test returns the result and true if the solve has finished, and
// Unknown and false otherwise.
func (c *Ctl) Test() (int, bool) {
	select {
	case <-c.done:
		return c.res, true
	default:
		return Unknown, false
	}
}

// Try waits at most d for the solve to finish, stopping it otherwise.
func (c *Ctl) Try(d time.Duration) int {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-c.done:
		return c.res
	case <-t.C:
		return c.Stop()
	}
}

// Wait blocks until the solve finishes.
func (c *Ctl) Wait() int {
	<-c.done
	return c.res
}

// Stop interrupts the solve and waits for it to return.  The result is
// Unknown unless the solve finished first.
func (c *Ctl) Stop() int {
	c.cancel()
	<-c.done
	return c.res
}

// Err returns the error of a finished solve.  It is nil before the solve
// finishes.
func (c *Ctl) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}
