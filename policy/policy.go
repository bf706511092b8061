// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"github.com/redial-go/redial/response"
)

// A Policy is a single acceptance rule evaluated against response
// metadata.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines, and Accept must not modify the head it is
// given.
//
// Use the built-in constructor Status, or implement your own Policy.
// Use Func to convert an ordinary function into a Policy, and to
// compose policies logically using Func.And and Func.Or.
type Policy interface {
	// Accept reports whether the response described by head is
	// acceptable.
	Accept(head *response.Head) bool
}

// The Func type is an adapter to allow the use of ordinary functions
// as acceptance policies. It implements the Policy interface, and also
// provides the logical composition methods And and Or.
//
// Every Func must be safe for concurrent use by multiple goroutines.
type Func func(head *response.Head) bool

// Accept calls f(head).
func (f Func) Accept(head *response.Head) bool {
	return f(head)
}

// And composes two policies into a new policy which accepts a head if
// both sub-policies accept it.
//
// Short-circuit logic is used, so g will not be evaluated if f rejects
// the head.
func (f Func) And(g Func) Func {
	return func(head *response.Head) bool {
		return f(head) && g(head)
	}
}

// Or composes two policies into a new policy which accepts a head if
// either of the two sub-policies accepts it.
//
// Short-circuit logic is used, so g will not be evaluated if f accepts
// the head.
func (f Func) Or(g Func) Func {
	return func(head *response.Head) bool {
		return f(head) || g(head)
	}
}

// Status constructs a policy which accepts a response if and only if
// its status code is a member of codes.
//
// A policy constructed from an empty code list rejects every response.
func Status(codes ...int) Policy {
	set := make(statusPolicy, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

type statusPolicy map[int]struct{}

func (p statusPolicy) Accept(head *response.Head) bool {
	_, ok := p[head.StatusCode]
	return ok
}
