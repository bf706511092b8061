// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"github.com/redial-go/redial/response"
)

// A Set combines a retry budget with an ordered list of acceptance
// policies.
//
// A Set is an immutable value: NewSet and With return new values and
// never modify their receiver, so a constructed set may be shared
// read-only across any number of concurrent request executions
// without locking, and a partially built set may be used as a template
// for several variants.
type Set struct {
	maxRetries int
	policies   []Policy
}

// NewSet returns a set with the given retry budget and no policies.
//
// A request governed by the set is attempted at most maxRetries+1
// times in total. NewSet panics if maxRetries is negative.
func NewSet(maxRetries int) Set {
	if maxRetries < 0 {
		panic("redial/policy: negative retry count")
	}
	return Set{maxRetries: maxRetries}
}

// With returns a copy of s with p appended to its policy list. The
// receiver is unchanged. With panics if p is nil.
func (s Set) With(p Policy) Set {
	if p == nil {
		panic("redial/policy: nil policy")
	}
	policies := make([]Policy, len(s.policies)+1)
	copy(policies, s.policies)
	policies[len(s.policies)] = p
	return Set{maxRetries: s.maxRetries, policies: policies}
}

// MaxRetries returns the set's retry budget. Total attempts for one
// request are MaxRetries()+1.
func (s Set) MaxRetries() int {
	return s.maxRetries
}

// Len returns the number of policies in the set.
func (s Set) Len() int {
	return len(s.policies)
}

// IsValid reports whether head satisfies every policy in the set.
//
// Policies are evaluated in registration order, stopping at the first
// rejection. A set with no policies accepts every response.
func (s Set) IsValid(head *response.Head) bool {
	for _, p := range s.policies {
		if !p.Accept(head) {
			return false
		}
	}
	return true
}
