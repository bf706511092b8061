// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redial

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	b := Fixed(25 * time.Millisecond)
	assert.Equal(t, 25*time.Millisecond, b.Pause(0))
	assert.Equal(t, 25*time.Millisecond, b.Pause(1))
	assert.Equal(t, 25*time.Millisecond, b.Pause(100))
	assert.Equal(t, time.Duration(0), Fixed(0).Pause(3))
}

func TestNewExpBackoff(t *testing.T) {
	t.Run("Bad Args", func(t *testing.T) {
		assert.PanicsWithValue(t, "redial: base must be positive", func() {
			NewExpBackoff(0, time.Second, nil)
		})
		assert.PanicsWithValue(t, "redial: max must be at least base", func() {
			NewExpBackoff(time.Second, time.Millisecond, nil)
		})
		assert.PanicsWithValue(t, "redial: jitter may not be a typed nil", func() {
			var r *rand.Rand
			NewExpBackoff(time.Millisecond, time.Second, r)
		})
		assert.PanicsWithValue(t, "redial: invalid jitter type", func() {
			NewExpBackoff(time.Millisecond, time.Second, "seed")
		})
	})
	t.Run("no jitter returns ceiling", func(t *testing.T) {
		b := NewExpBackoff(50*time.Millisecond, time.Second, nil)
		assert.Equal(t, 50*time.Millisecond, b.Pause(0))
		assert.Equal(t, 100*time.Millisecond, b.Pause(1))
		assert.Equal(t, 200*time.Millisecond, b.Pause(2))
		assert.Equal(t, 400*time.Millisecond, b.Pause(3))
		assert.Equal(t, 800*time.Millisecond, b.Pause(4))
		assert.Equal(t, time.Second, b.Pause(5))
		assert.Equal(t, time.Second, b.Pause(6))
	})
	t.Run("overflow capped at max", func(t *testing.T) {
		b := NewExpBackoff(50*time.Millisecond, time.Second, nil)
		assert.Equal(t, time.Second, b.Pause(62))
		assert.Equal(t, time.Second, b.Pause(63))
		assert.Equal(t, time.Second, b.Pause(64))
	})
	t.Run("jitter bounds", func(t *testing.T) {
		b := NewExpBackoff(50*time.Millisecond, time.Second, time.Now())
		m := []time.Duration{
			50 * time.Millisecond,
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
			800 * time.Millisecond,
			time.Second,
		}
		total := time.Duration(0)
		for i, max := range m {
			p := b.Pause(i)
			total += p
			assert.GreaterOrEqual(t, p, time.Duration(0))
			assert.LessOrEqual(t, p, max)
		}
		assert.GreaterOrEqual(t, total, time.Duration(0))
	})
	t.Run("seed reproducible", func(t *testing.T) {
		b1 := NewExpBackoff(50*time.Millisecond, time.Second, int64(12345))
		b2 := NewExpBackoff(50*time.Millisecond, time.Second, int64(12345))
		for i := 0; i < 6; i++ {
			assert.Equal(t, b1.Pause(i), b2.Pause(i))
		}
	})
	t.Run("rand source jitter", func(t *testing.T) {
		b := NewExpBackoff(time.Millisecond, time.Second, rand.NewSource(1))
		p := b.Pause(0)
		assert.GreaterOrEqual(t, p, time.Duration(0))
		assert.LessOrEqual(t, p, time.Millisecond)
	})
}
