// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package redial provides a retrying connector middleware: it wraps any
transport capability implementing the Connector interface and replays
requests that fail in transit or draw an unacceptable response, within
a bounded retry budget.

Build a retrying connector around an existing transport:

	conn := redial.New(2).
		Policy(policy.Status(200, 201, 204)).
		Wrap(transport)
	out, err := conn.Call(ctx, req)
	...

Acceptance policies come from package policy. A policy may be a status
code set, or an arbitrary predicate over the response head:

	conn := redial.New(3).
		Policy(policy.Status(200)).
		Policy(policy.Func(func(h *response.Head) bool {
			return h.Header.Get("X-Cache") != "MISS"
		})).
		Wrap(transport)

A response must satisfy every configured policy to be accepted. A
rejected response consumes a retry slot but is never converted into an
error: when the budget runs out, the last response is returned as-is
for the caller to inspect. Transport errors are absorbed and retried
until the budget runs out, after which the last error is returned
verbatim.

Requests and their replay semantics come from package request. A
request with an empty or buffered body is cloned for each attempt, so
every attempt sends a field-for-field identical request. A request
carrying a one-shot stream body, or establishing a CONNECT-style
tunnel, is dispatched exactly once regardless of configuration.

To pause between attempts instead of retrying immediately, install a
backoff:

	conn := redial.New(5).
		Backoff(redial.NewExpBackoff(50*time.Millisecond, time.Second, time.Now())).
		Wrap(transport)

To hook into the fine-grained details of the retry loop, install a
handler into the appropriate handler chain:

	handlers := &redial.HandlerGroup{}
	handlers.PushBack(redial.AfterAttempt, redial.HandlerFunc(
		func(_ redial.Event, x *redial.Exchange) {
			log.Printf("attempt %d: outcome=%v err=%v", x.Attempt, x.Outcome, x.Err)
		}),
	)
	conn := redial.New(2).Handlers(handlers).Wrap(transport)

This package enforces no timeouts and introduces no queuing: readiness
checks delegate to the wrapped connector, and a caller wanting bounded
latency should impose it via the context or the transport.
*/
package redial
