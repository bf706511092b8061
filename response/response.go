// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package response contains the types describing what a connector
// produced for one request attempt: the response Head (the metadata
// acceptance policies are evaluated against) and the tagged Outcome
// (a conventional response exchange or an established tunnel).
package response

import (
	"io"
	"net/http"
)

// A Head holds the response metadata for one request attempt.
// Acceptance policies are evaluated against the head, for both
// conventional responses and established tunnels.
type Head struct {
	// StatusCode is the numeric response status code.
	StatusCode int

	// Proto, ProtoMajor, and ProtoMinor identify the protocol version,
	// as in the net/http response structure.
	Proto      string
	ProtoMajor int
	ProtoMinor int

	// Header contains the response header fields.
	Header http.Header
}

// NewHead returns a head with the given status code, an HTTP/1.1
// protocol version, and an empty header collection.
func NewHead(statusCode int) *Head {
	return &Head{
		StatusCode: statusCode,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
	}
}

// An Outcome is what a connector produced for one successful request
// attempt: either a conventional response (head plus buffered body) or
// an established tunnel (head plus the raw connection).
//
// An outcome is owned by the attempt that produced it until it is
// returned to the caller or discarded in favor of a retry.
type Outcome struct {
	head   *Head
	body   []byte
	conn   io.ReadWriteCloser
	tunnel bool
}

// Direct returns an outcome for a conventional response exchange.
// The head may not be nil; the body may be nil for an empty response
// body.
func Direct(head *Head, body []byte) *Outcome {
	if head == nil {
		panic("redial/response: nil head")
	}
	return &Outcome{head: head, body: body}
}

// Tunnel returns an outcome for an established CONNECT-style tunnel.
// The head may not be nil. The connection is opaque to this package
// and is handed to the caller untouched.
func Tunnel(head *Head, conn io.ReadWriteCloser) *Outcome {
	if head == nil {
		panic("redial/response: nil head")
	}
	return &Outcome{head: head, conn: conn, tunnel: true}
}

// Head returns the response head. It is never nil.
func (o *Outcome) Head() *Head {
	return o.head
}

// StatusCode returns the status code of the response head.
func (o *Outcome) StatusCode() int {
	return o.head.StatusCode
}

// Body returns the buffered response body. It is nil for tunnel
// outcomes, and may be nil for a conventional response with an empty
// body.
func (o *Outcome) Body() []byte {
	return o.body
}

// Conn returns the raw connection of a tunnel outcome, or nil for a
// conventional response.
func (o *Outcome) Conn() io.ReadWriteCloser {
	return o.conn
}

// Tunneled reports whether the outcome established a tunnel rather
// than exchanging a conventional response.
func (o *Outcome) Tunneled() bool {
	return o.tunnel
}
