// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagecache

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlPage(body string) Page {
	return Page{
		Header: http.Header{"Content-Type": {"text/html; charset=utf-8"}},
		Body:   []byte(body),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(0)
	require.ErrorIs(t, err, ErrInvalidSize)

	c, err := New(2)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestAddGet(t *testing.T) {
	t.Parallel()

	c, err := New(2)
	require.NoError(t, err)

	big := strings.Repeat("<li>post</li>", 500)

	assert.False(t, c.Add("GET /", htmlPage(big)))
	assert.False(t, c.Add("GET /tags", htmlPage("x")))

	page, ok := c.Get("GET /")
	require.True(t, ok)
	assert.Equal(t, big, string(page.Body))
	assert.Equal(t, "text/html; charset=utf-8", page.Header.Get("Content-Type"))

	small, ok := c.Get("GET /tags")
	require.True(t, ok)
	assert.Equal(t, "x", string(small.Body))

	_, ok = c.Get("GET /missing")
	assert.False(t, ok)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, err := New(2)
	require.NoError(t, err)

	c.Add("a", htmlPage("a"))
	c.Add("b", htmlPage("b"))

	// Touch a so b becomes the oldest.
	_, _ = c.Get("a")

	assert.True(t, c.Add("c", htmlPage("c")))
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("b")
	assert.False(t, ok)

	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestUpdateDoesNotEvict(t *testing.T) {
	t.Parallel()

	c, err := New(1)
	require.NoError(t, err)

	c.Add("a", htmlPage("old"))
	assert.False(t, c.Add("a", htmlPage("new")))

	page, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", string(page.Body))
}

func TestStoredPagesAreCopies(t *testing.T) {
	t.Parallel()

	c, err := New(1)
	require.NoError(t, err)

	original := htmlPage("abc")
	c.Add("a", original)

	original.Body[0] = 'z'
	original.Header.Set("Content-Type", "text/plain")

	page, _ := c.Get("a")
	page.Body[1] = 'z'

	again, _ := c.Get("a")
	assert.Equal(t, "abc", string(again.Body))
	assert.Equal(t, "text/html; charset=utf-8", again.Header.Get("Content-Type"))
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c, err := New(2)
	require.NoError(t, err)

	c.Add("a", htmlPage("a"))

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Zero(t, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	c, err := New(8)
	require.NoError(t, err)

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Go(func() {
			key := string(rune('a' + i%10))
			c.Add(key, htmlPage(strings.Repeat(key, 1000)))

			if page, ok := c.Get(key); ok {
				assert.Equal(t, strings.Repeat(key, 1000), string(page.Body))
			}
		})
	}

	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 8)
}
