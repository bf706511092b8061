// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redial

import (
	"context"
	"time"

	"github.com/redial-go/redial/policy"
	"github.com/redial-go/redial/request"
	"github.com/redial-go/redial/response"
)

var emptyHandlers = HandlerGroup{}

// A Retry is a builder for retrying connector wrappers.
//
// Retry has value semantics: each builder method returns an updated
// copy and leaves its receiver unchanged, so a partially configured
// builder may be used as a template for several variants. Once built,
// the configuration is immutable and is shared read-only by every
// connector returned from Wrap.
//
//	conn := redial.New(2).
//		Policy(policy.Status(200, 201, 204)).
//		Wrap(transport)
type Retry struct {
	set      policy.Set
	backoff  Backoff
	handlers *HandlerGroup
}

// New returns a builder with the given retry budget and no acceptance
// policies. A request governed by the resulting configuration is
// attempted at most maxRetries+1 times in total. New panics if
// maxRetries is negative.
func New(maxRetries int) Retry {
	return Retry{set: policy.NewSet(maxRetries)}
}

// Policy returns a copy of r with p appended to its acceptance policy
// list. A response is accepted only if every configured policy accepts
// its head; policies are evaluated in registration order. Policy
// panics if p is nil.
//
// The policy may be a status code set constructed with policy.Status,
// an arbitrary predicate converted with policy.Func, or any other
// policy.Policy implementation.
func (r Retry) Policy(p policy.Policy) Retry {
	r.set = r.set.With(p)
	return r
}

// Backoff returns a copy of r that pauses between attempts according
// to b. A nil backoff, the default, retries immediately.
func (r Retry) Backoff(b Backoff) Retry {
	r.backoff = b
	return r
}

// Handlers returns a copy of r with the handler group g installed.
// Handlers in the group are run at the designated events during every
// call through connectors built from r.
func (r Retry) Handlers(g *HandlerGroup) Retry {
	r.handlers = g
	return r
}

// Wrap returns a retrying connector that forwards to next, replaying
// requests according to the configuration built so far. Wrap panics if
// next is nil.
//
// Wrap may be called any number of times on one builder; the resulting
// connectors share the same immutable configuration.
func (r Retry) Wrap(next Connector) *Retrier {
	if next == nil {
		panic("redial: nil connector")
	}
	h := r.handlers
	if h == nil {
		h = &emptyHandlers
	}
	return &Retrier{
		set:      r.set,
		backoff:  r.backoff,
		handlers: h,
		next:     next,
	}
}

// A Retrier is a retrying connector. It wraps another Connector and
// decides, per call, whether a transport failure or an unsatisfactory
// response should trigger another attempt, replaying the request
// faithfully for each attempt.
//
// Retrier implements the Connector interface. It holds no mutable
// state of its own and is safe for concurrent use by multiple
// goroutines. Construct a Retrier with the Retry builder.
type Retrier struct {
	set      policy.Set
	backoff  Backoff
	handlers *HandlerGroup
	next     Connector
}

// An Exchange carries the state of one logical call through a Retrier.
// It is handed to event handlers at each plug-in point.
//
// Handlers should treat the exported fields as read-only; the exchange
// state is vital to the correct functioning of the retry loop.
type Exchange struct {
	// Request is the original request the caller passed in. Attempt
	// descriptors are cloned from it; it is never dispatched directly
	// on a retryable path.
	Request *request.Request

	// Attempt is the zero-based number of the current attempt. It is
	// zero on the initial attempt, one on the first retry, and so on.
	Attempt int

	// Outcome is the outcome of the most recent attempt. It is nil if
	// the most recent attempt ended in a transport error, or while an
	// attempt is underway.
	Outcome *response.Outcome

	// Err is the transport error from the most recent attempt. It is
	// nil if the most recent attempt resolved to an outcome, or while
	// an attempt is underway.
	Err error
}

// IsReady reports whether the wrapped connector can accept work. The
// retrier introduces no queuing or throttling of its own.
func (r *Retrier) IsReady() bool {
	return r.next.IsReady()
}

// Call dispatches the request through the wrapped connector, retrying
// per the retrier's configuration, and returns the final outcome or
// transport error.
//
// For a client request with an empty or buffered body, Call clones the
// request for each attempt and dispatches the clone. A transport error
// is retried until the budget is exhausted, after which the last error
// is returned verbatim. An outcome whose head fails the acceptance
// policies also consumes a retry slot, but is never converted into an
// error: once the budget is exhausted, the last outcome is returned
// as-is for the caller to inspect. An outcome accepted by every policy
// is returned immediately.
//
// A tunnel request, and any request carrying a stream body, is
// dispatched exactly once and its result returned unmodified: there is
// no conventional response to re-request in the first case, and no way
// to reproduce the body without corrupting it in the second.
//
// Attempts are strictly sequential. If ctx is cancelled or expires
// while the retrier is between attempts or pausing for backoff, Call
// returns ctx.Err(); cancellation of an attempt in flight follows the
// wrapped connector's own semantics. Call enforces no timeout of its
// own.
func (r *Retrier) Call(ctx context.Context, req *request.Request) (*response.Outcome, error) {
	x := &Exchange{Request: req}
	r.handlers.run(BeforeCall, x)

	if req.Kind == request.KindTunnel || !req.Body.Replayable() {
		// Single shot. Tunnels are never retried, and a stream body
		// cannot be reproduced for a second attempt, so neither the
		// policies nor the budget apply.
		r.handlers.run(BeforeAttempt, x)
		x.Outcome, x.Err = r.next.Call(ctx, req)
		r.handlers.run(AfterAttempt, x)
		r.handlers.run(AfterCall, x)
		return x.Outcome, x.Err
	}

	for {
		r.handlers.run(BeforeAttempt, x)
		x.Outcome, x.Err = r.next.Call(ctx, req.Clone())
		r.handlers.run(AfterAttempt, x)

		if x.Err == nil && (r.set.IsValid(x.Outcome.Head()) || x.Attempt == r.set.MaxRetries()) {
			break
		}
		if x.Err != nil && x.Attempt == r.set.MaxRetries() {
			break
		}

		if err := r.pause(ctx, x.Attempt); err != nil {
			x.Outcome, x.Err = nil, err
			break
		}
		x.Outcome, x.Err = nil, nil
		x.Attempt++
	}

	r.handlers.run(AfterCall, x)
	return x.Outcome, x.Err
}

// pause observes the configured backoff before the next attempt. It
// returns a non-nil error if ctx is cancelled or expires first, or if
// it already was.
func (r *Retrier) pause(ctx context.Context, attempt int) error {
	var d time.Duration
	if r.backoff != nil {
		d = r.backoff.Pause(attempt)
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
