// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redial

import (
	"context"

	"github.com/redial-go/redial/request"
	"github.com/redial-go/redial/response"
)

// A Connector is the transport capability this package wraps. It
// performs the actual request/response exchange: resolution,
// connection management, and the wire protocol are all its concern.
//
// Implementations of Connector must be safe for concurrent use by
// multiple goroutines. Retrier implements the Connector interface, so
// retrying connectors may themselves be wrapped or composed.
type Connector interface {
	// IsReady reports whether the connector can accept work. It must
	// not block.
	IsReady() bool

	// Call performs one request attempt and blocks until the attempt
	// resolves, returning the outcome or a transport error. Exactly
	// one of the outcome and the error is non-nil.
	//
	// Cancelling ctx cancels a pending attempt according to the
	// implementation's own cancellation semantics.
	Call(ctx context.Context, req *request.Request) (*response.Outcome, error)
}
