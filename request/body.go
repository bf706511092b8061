// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"errors"
	"io"
	"net/http"
)

const badBodyTypeMsg = "redial/request: invalid type (for body use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// A BodyKind identifies how a request body is represented.
type BodyKind int

const (
	// BodyEmpty means the request carries no body. An empty body is
	// trivially reproducible.
	BodyEmpty BodyKind = iota
	// BodyBuffered means the whole body is held in memory. A buffered
	// body is reproducible byte-for-byte on every request attempt.
	BodyBuffered
	// BodyStream means the body reads from a one-shot stream. Once
	// consumed it cannot be reproduced, so a request carrying a stream
	// body is dispatched exactly once and never retried.
	BodyStream
)

// A Body is the tagged body of a request. The zero value is the empty
// body.
type Body struct {
	kind   BodyKind
	bytes  []byte
	stream io.ReadCloser
}

// Buffered returns a body backed by b.
//
// The slice is shared, not copied: the caller must not modify it after
// the call, and every clone of a request carrying the body sends
// exactly these bytes. A nil or empty slice yields the empty body.
func Buffered(b []byte) Body {
	if len(b) == 0 {
		return Body{}
	}
	return Body{kind: BodyBuffered, bytes: b}
}

// Stream returns a body that reads from rc.
//
// A stream body cannot be reproduced once consumed. Use BodyBytes
// instead if buffering the stream up front is acceptable, since a
// buffered body remains eligible for retry.
func Stream(rc io.ReadCloser) Body {
	if rc == nil {
		panic("redial/request: nil stream")
	}
	return Body{kind: BodyStream, stream: rc}
}

// BodyBytes converts a generic body parameter to a buffered Body.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If body is nil, the empty body and no error is returned.
//
// • If body is a []byte, a body sharing the slice, and no error, is
// returned.
//
// • If body is a string, a body holding the built-in conversion from
// string to byte slice, and no error, is returned.
//
// • If body is an io.Reader or io.ReadCloser, it is read to the end
// and buffered (and closed if it implements Closer). If reading or
// closing causes an error, the return value is the empty body and the
// error. Otherwise the result is a buffered body holding the entire
// contents read, and no error.
//
// • If body is any other type than those listed above, the empty body
// and an error is returned.
func BodyBytes(body interface{}) (Body, error) {
	switch x := body.(type) {
	case nil:
		return Body{}, nil
	case string:
		return Buffered([]byte(x)), nil
	case []byte:
		return Buffered(x), nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return Body{}, err
		}
		err = x.Close()
		if err != nil {
			return Body{}, err
		}
		return Buffered(b), nil
	case io.Reader:
		return BodyBytes(io.NopCloser(x))
	default:
		return Body{}, errors.New(badBodyTypeMsg)
	}
}

// Kind returns the body representation kind.
func (b Body) Kind() BodyKind {
	return b.kind
}

// Replayable reports whether the body can be reproduced for another
// request attempt. Empty and buffered bodies are replayable; stream
// bodies are not.
func (b Body) Replayable() bool {
	return b.kind != BodyStream
}

// Bytes returns the buffered body content, or nil for empty and
// stream bodies. The returned slice must be treated as read-only.
func (b Body) Bytes() []byte {
	return b.bytes
}

// Len returns the length of the buffered body content in bytes. It is
// zero for empty and stream bodies.
func (b Body) Len() int {
	return len(b.bytes)
}

// Reader returns a reader over the body content for sending the
// request. For a buffered body, every call returns a fresh reader over
// the shared bytes. For a stream body, every call returns the same
// underlying one-shot stream. For the empty body, it returns
// http.NoBody.
func (b Body) Reader() io.ReadCloser {
	switch b.kind {
	case BodyBuffered:
		return io.NopCloser(bytes.NewReader(b.bytes))
	case BodyStream:
		return b.stream
	default:
		return http.NoBody
	}
}
