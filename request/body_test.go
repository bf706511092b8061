// Copyright 2025 The redial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffered(t *testing.T) {
	b := Buffered([]byte("hello"))
	assert.Equal(t, BodyBuffered, b.Kind())
	assert.True(t, b.Replayable())
	assert.Equal(t, []byte("hello"), b.Bytes())
	assert.Equal(t, 5, b.Len())
	t.Run("empty collapses to empty body", func(t *testing.T) {
		assert.Equal(t, BodyEmpty, Buffered(nil).Kind())
		assert.Equal(t, BodyEmpty, Buffered([]byte{}).Kind())
	})
}

func TestZeroBody(t *testing.T) {
	var b Body
	assert.Equal(t, BodyEmpty, b.Kind())
	assert.True(t, b.Replayable())
	assert.Nil(t, b.Bytes())
	assert.Equal(t, 0, b.Len())
}

func TestStream(t *testing.T) {
	t.Run("Bad Args", func(t *testing.T) {
		assert.PanicsWithValue(t, "redial/request: nil stream", func() { Stream(nil) })
	})
	t.Run("Normal", func(t *testing.T) {
		rc := io.NopCloser(strings.NewReader("once"))
		b := Stream(rc)
		assert.Equal(t, BodyStream, b.Kind())
		assert.False(t, b.Replayable())
		assert.Nil(t, b.Bytes())
		assert.Equal(t, 0, b.Len())
		assert.Equal(t, rc, b.Reader())
	})
}

func TestBodyBytes(t *testing.T) {
	testCases := []struct {
		name string
		in   interface{}
		want []byte
	}{
		{name: "nil", in: nil, want: nil},
		{name: "string", in: "foo", want: []byte("foo")},
		{name: "bytes", in: []byte("bar"), want: []byte("bar")},
		{name: "reader", in: strings.NewReader("baz"), want: []byte("baz")},
		{name: "read closer", in: io.NopCloser(strings.NewReader("qux")), want: []byte("qux")},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, err := BodyBytes(testCase.in)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, b.Bytes())
			assert.True(t, b.Replayable())
		})
	}
	t.Run("invalid type", func(t *testing.T) {
		_, err := BodyBytes(42)
		assert.EqualError(t, err, badBodyTypeMsg)
	})
	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := BodyBytes(errReader{err: boom})
		assert.Same(t, boom, err)
	})
	t.Run("close error", func(t *testing.T) {
		boom := errors.New("slam")
		_, err := BodyBytes(errCloser{Reader: strings.NewReader("x"), err: boom})
		assert.Same(t, boom, err)
	})
}

func TestBody_Reader(t *testing.T) {
	t.Run("empty is NoBody", func(t *testing.T) {
		var b Body
		assert.Equal(t, http.NoBody, b.Reader())
	})
	t.Run("buffered is repeatable", func(t *testing.T) {
		b := Buffered([]byte("hello"))
		for i := 0; i < 2; i++ {
			content, err := io.ReadAll(b.Reader())
			require.NoError(t, err)
			assert.Equal(t, []byte("hello"), content)
		}
	})
	t.Run("stream is one-shot", func(t *testing.T) {
		b := Stream(io.NopCloser(strings.NewReader("once")))
		content, err := io.ReadAll(b.Reader())
		require.NoError(t, err)
		assert.Equal(t, []byte("once"), content)
		content, err = io.ReadAll(b.Reader())
		require.NoError(t, err)
		assert.Empty(t, content)
	})
}

type errReader struct {
	err error
}

func (r errReader) Read(_ []byte) (int, error) {
	return 0, r.err
}

type errCloser struct {
	io.Reader
	err error
}

func (c errCloser) Close() error {
	return c.err
}
