// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redial

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Retrier via the Retry builder
// to extend it with custom functionality.
type Event int

const (
	// BeforeCall identifies the event that occurs when a call enters
	// the retrier, before the first attempt is dispatched.
	//
	// When Retrier fires BeforeCall, the exchange holds the original
	// request; its outcome and error fields are nil and its attempt
	// counter is zero.
	BeforeCall Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual attempt is dispatched to the wrapped connector.
	//
	// When Retrier fires BeforeAttempt, the exchange's attempt counter
	// identifies the attempt about to be made; the outcome and error
	// fields are nil.
	BeforeAttempt
	// AfterAttempt identifies the event that occurs after an attempt
	// resolves, regardless of whether it resolved successfully, and
	// before any retry decision is made.
	//
	// When Retrier fires AfterAttempt, exactly one of the exchange's
	// outcome and error fields is non-nil.
	AfterAttempt
	// AfterCall identifies the event that occurs after the call leaves
	// the retry loop, immediately before the result is returned to the
	// caller.
	//
	// When Retrier fires AfterCall, the exchange is in the same state
	// it was in after the final AfterAttempt event, except that a
	// cancellation detected between attempts replaces both fields with
	// the context's error.
	AfterCall
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeCall",
	"BeforeAttempt",
	"AfterAttempt",
	"AfterCall",
}

// Events returns a slice containing all events which can occur during
// a call through a Retrier, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeCall,
		BeforeAttempt,
		AfterAttempt,
		AfterCall,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
