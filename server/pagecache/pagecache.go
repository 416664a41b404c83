// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pagecache keeps rendered pages in a fixed-size, least-recently-used
cache. Bodies are stored zstd-compressed when that makes them smaller.

Posts only change on restart, so entries never expire; a new Cache is built
whenever the content store is replaced.
*/
package pagecache

import (
	"container/list"
	"errors"
	"net/http"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ErrInvalidSize is returned by New for a non-positive capacity.
var ErrInvalidSize = errors.New("must provide a positive size")

// Page is a rendered response.
type Page struct {
	Header http.Header
	Body   []byte
}

// entry is what each list element holds.
type entry struct {
	key        string
	header     http.Header
	body       []byte
	compressed bool
}

// Cache is safe for concurrent use. The zero value is not ready for use.
type Cache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	lock      sync.Mutex
	enc       *zstd.Encoder
	dec       *zstd.Decoder
}

// New returns a Cache holding at most size pages.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	// nil writer/reader: only EncodeAll/DecodeAll are used.
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}

	return &Cache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
		enc:       enc,
		dec:       dec,
	}, nil
}

// Add stores page under key, evicting the least recently used page when full.
// It reports whether an eviction occurred.
func (c *Cache) Add(key string, page Page) bool {
	// Compress outside the lock; EncodeAll is safe for concurrent use.
	e := &entry{key: key, header: page.Header.Clone()}

	if compressed := c.enc.EncodeAll(page.Body, nil); len(compressed) < len(page.Body) {
		e.body, e.compressed = compressed, true
	} else {
		e.body = append([]byte(nil), page.Body...)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value = e
		c.evictList.MoveToFront(el)

		return false
	}

	c.items[key] = c.evictList.PushFront(e)

	if c.evictList.Len() <= c.size {
		return false
	}

	if oldest := c.evictList.Back(); oldest != nil {
		c.evictList.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}

	return true
}

// Get returns the page stored under key and marks it as recently used.
//
// A page whose body fails to decompress is dropped and reported as missing.
func (c *Cache) Get(key string) (Page, bool) {
	c.lock.Lock()

	el, ok := c.items[key]
	if !ok {
		c.lock.Unlock()

		return Page{}, false
	}

	c.evictList.MoveToFront(el)
	e := el.Value.(*entry)

	c.lock.Unlock()

	page := Page{Header: e.header.Clone()}

	if !e.compressed {
		page.Body = append([]byte(nil), e.body...)

		return page, true
	}

	body, err := c.dec.DecodeAll(e.body, nil)
	if err != nil {
		c.Remove(key)

		return Page{}, false
	}

	page.Body = body

	return page, true
}

// Remove deletes key, reporting whether it was present.
func (c *Cache) Remove(key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}

	c.evictList.Remove(el)
	delete(c.items, key)

	return true
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.evictList.Len()
}
