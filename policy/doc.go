// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package policy implements acceptance policies for responses, and the
Set type which combines an ordered list of policies with a retry
budget.

A Policy is a single acceptance rule evaluated against a response
head. Use the built-in constructor Status for status-code membership,
or the Func adapter to turn any predicate over a response head into a
policy:

	accept200 := policy.Status(200, 201, 204)
	hasBody := policy.Func(func(h *response.Head) bool {
		return h.Header.Get("Content-Length") != "0"
	})

A Set is built once, via NewSet and chained With calls, and is then
immutable: it may be shared read-only across any number of concurrent
request executions without locking.

	set := policy.NewSet(2).With(accept200).With(hasBody)

A response is valid under a set if and only if every contained policy
accepts its head; a set with no policies accepts every response.
Policies never see transport errors — failed attempts are governed
purely by the set's retry budget.
*/
package policy
