// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redial

// A HandlerGroup is a group of event handler chains which can be
// installed in a Retrier via the Retry builder.
//
// Install all handlers before the group is handed to Wrap; a group is
// not safe for modification once calls are flowing through a Retrier
// that holds it.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("redial: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, x *Exchange) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, x)
	}
}

func run(chain []Handler, evt Event, x *Exchange) {
	for _, h := range chain {
		h.Handle(evt, x)
	}
}

// A Handler handles the occurrence of an event during a call through
// a Retrier.
type Handler interface {
	Handle(Event, *Exchange)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Exchange)

// Handle calls f(evt, x).
func (f HandlerFunc) Handle(evt Event, x *Exchange) {
	f(evt, x)
}
