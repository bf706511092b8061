// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Request (describes one
outgoing request) and Body (the tagged request body). These two types
are fundamental to replaying requests faithfully across retry attempts.

A Request is the reproducible description of an outgoing request: its
method, URL, protocol version, optional peer address, header
collection, and body. For those familiar with the Go standard HTTP
library, net/http, a Request looks like a stripped-down http.Request
with all server-side fields removed and the body replaced with a
tagged Body value. Fields are named and typed consistently with
http.Request wherever possible.

Create a request to send through a connector:

	body, err := request.BodyBytes("payload")
	...
	req, err := request.New("POST", "https://example.com/upload", body)
	...
	out, err := conn.Call(ctx, req)
	...

The Clone method is the replay operation: it derives an independent
copy of the request for one attempt, deep-copying the header
collection while sharing the immutable bytes of a buffered body, so
every attempt sends a field-for-field identical request. Ephemeral
values attached via SetValue are deliberately left behind, as they are
caller bookkeeping rather than part of the wire request.

A Body is one of three kinds: empty, buffered, or stream. Empty and
buffered bodies are reproducible, so requests carrying them may be
retried. A stream body reads from a one-shot source that cannot be
reproduced; a retrying connector dispatches such a request exactly
once and returns whatever the transport yields.
*/
package request
