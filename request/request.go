// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// A Kind discriminates ordinary client requests from CONNECT-style
// tunnel establishment requests.
type Kind int

const (
	// KindClient is an ordinary request which exchanges a conventional
	// response with the remote endpoint. Client requests are eligible
	// for retry as long as their body is replayable.
	KindClient Kind = iota
	// KindTunnel is a CONNECT-style request which establishes a raw
	// connection rather than exchanging a response body. Tunnel
	// requests are dispatched exactly once and never retried.
	KindTunnel
)

// A Request describes one outgoing request for execution by a
// connector.
//
// Unlike a lower-level request representation tied to a live
// connection or a one-shot body stream, a Request with an empty or
// buffered body is fully reproducible: Clone derives an independent
// copy suitable for exactly one request attempt, so a retrying caller
// can dispatch the same logical request multiple times without
// corrupting or losing any of its state.
//
// The exported fields constitute the wire request and are all copied
// by Clone. Ephemeral values attached via SetValue are caller-local
// bookkeeping, not part of the wire request, and are deliberately not
// carried over to clones.
type Request struct {
	// Method specifies the request method (GET, POST, PUT, etc.).
	Method string

	// URL specifies the URL to access. For tunnel requests only the
	// Host (the tunnel authority) is meaningful.
	URL *urlpkg.URL

	// Proto, ProtoMajor, and ProtoMinor identify the protocol version,
	// as in the net/http request structure.
	Proto      string
	ProtoMajor int
	ProtoMinor int

	// PeerAddr optionally pins the remote peer address, bypassing
	// whatever resolution the connector would otherwise perform. A nil
	// PeerAddr leaves the choice to the connector.
	PeerAddr net.Addr

	// Header contains the request header fields to be sent by the
	// connector.
	//
	// For further details, see the documentation of Request.Header in
	// the net/http package.
	Header http.Header

	// Body is the request body. Its zero value is the empty body.
	Body Body

	// Kind identifies the request as an ordinary client request or a
	// tunnel establishment request.
	Kind Kind

	// data contains caller-attached ephemeral values. Clone never
	// copies it.
	data context.Context
}

// New returns a new client request given a method, URL, and body.
//
// An empty method means GET. The method must be a valid token as
// defined in RFC 7230 section 3.2.6. The protocol version defaults to
// HTTP/1.1.
func New(method, url string, body Body) (*Request, error) {
	if method == "" {
		method = "GET"
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, fmt.Errorf("redial/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Request{
		Method:     method,
		URL:        u,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       body,
	}, nil
}

// NewTunnel returns a new tunnel establishment request for the given
// authority (host or host:port). The request carries no body and is
// never retried by a retrying connector.
func NewTunnel(authority string) (*Request, error) {
	if authority == "" {
		return nil, errors.New("redial/request: empty tunnel authority")
	}
	return &Request{
		Method:     "CONNECT",
		URL:        &urlpkg.URL{Host: removeEmptyPort(authority)},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Kind:       KindTunnel,
	}, nil
}

// Clone returns an independent copy of r usable for exactly one
// request attempt.
//
// The method, URL, protocol version, peer address, header collection,
// and body are all carried over. The header collection is deep-copied,
// so mutating the clone's headers (or the original's) does not affect
// the other, nor any previously made clone. A buffered body is not
// copied: the clone shares the same immutable byte slice, so every
// attempt sends byte-for-byte identical content.
//
// Ephemeral values attached with SetValue are not copied.
func (r *Request) Clone() *Request {
	r2 := &Request{
		Method:     r.Method,
		Proto:      r.Proto,
		ProtoMajor: r.ProtoMajor,
		ProtoMinor: r.ProtoMinor,
		PeerAddr:   r.PeerAddr,
		Header:     r.Header.Clone(),
		Body:       r.Body,
		Kind:       r.Kind,
	}
	if r.URL != nil {
		u := *r.URL
		r2.URL = &u
	}
	return r2
}

// AddCookie adds a cookie to the request. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field. That
// means all cookies, if any, are written into the same line,
// separated by semicolons.
func (r *Request) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	s := c2.String()
	if h := r.Header.Get("Cookie"); h != "" {
		r.Header.Set("Cookie", h+"; "+s)
	} else {
		r.Header.Set("Cookie", s)
	}
}

// SetBasicAuth sets the request's Authorization header to use HTTP
// Basic Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted.
func (r *Request) SetBasicAuth(username, password string) {
	r.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// SetValue attaches an ephemeral value to the request. Ephemeral
// values are visible via Value on this request only: Clone does not
// carry them over, because they are attempt-local bookkeeping rather
// than part of the wire request.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of a built-in type, to avoid collisions between
// independent callers attaching values to the same request.
func (r *Request) SetValue(key, value interface{}) {
	ctx := r.data
	if ctx == nil {
		ctx = context.Background()
	}
	r.data = context.WithValue(ctx, key, value)
}

// Value returns the ephemeral value associated with this request for
// key, or nil if there is no value associated with key.
func (r *Request) Value(key interface{}) interface{} {
	ctx := r.data
	if ctx == nil {
		return nil
	}
	return ctx.Value(key)
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
