// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redial

import (
	"math/rand"
	"sync"
	"time"
)

// A Backoff decides how long a Retrier pauses before dispatching the
// next attempt after a failed or rejected one.
//
// Implementations of Backoff must be safe for concurrent use by
// multiple goroutines.
//
// A Retrier without a Backoff retries immediately. This package
// provides two implementations, via the constructor functions Fixed
// and NewExpBackoff.
type Backoff interface {
	// Pause returns the pause to observe before retrying after the
	// given zero-based attempt. A non-positive return value means
	// retry immediately.
	Pause(attempt int) time.Duration
}

// Fixed constructs a Backoff that always pauses for the given
// duration.
func Fixed(d time.Duration) Backoff {
	return fixedBackoff(d)
}

type fixedBackoff time.Duration

func (b fixedBackoff) Pause(_ int) time.Duration {
	return time.Duration(b)
}

// NewExpBackoff constructs a Backoff implementing an exponential
// formula with optional jitter.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**attempt, max)
//
// Base and max must be positive values, and max must be at least equal
// to base.
//
// Parameter jitter is used to generate a random number between 0 and
// ceil. To make a backoff that does not jitter and simply returns
// ceil on each attempt, pass nil for jitter. Otherwise you may specify
// either a random number generator seed value (as a time.Time, int, or
// int64) or a random number generator (as a rand.Source). If a seed
// value is specified, it is used to seed a random number generator
// for calculating jitter. If a rand.Source is specified, it is used to
// calculate jitter.
func NewExpBackoff(base, max time.Duration, jitter interface{}) Backoff {
	if base < 1 {
		panic("redial: base must be positive")
	}
	if max < base {
		panic("redial: max must be at least base")
	}
	r := jitterToRand(jitter)
	return &expBackoff{
		base: base,
		max:  max,
		rand: r,
	}
}

type expBackoff struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (b *expBackoff) Pause(attempt int) time.Duration {
	exp := int64(1) << attempt
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(b.base) * exp
	if ceil < int64(b.base) || int64(b.max) < ceil {
		ceil = int64(b.max)
	}

	pause := ceil
	if ceil > 0 {
		b.lock.Lock()
		defer b.lock.Unlock()
		if b.rand != nil {
			pause = b.rand.Int63n(ceil)
		}
	}

	return time.Duration(pause)
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("redial: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("redial: invalid jitter type")
	}
	return rand.New(s)
}
