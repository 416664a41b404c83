// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagecache

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"codeberg.org/jackfan/blog/server/utils"
)

// HandlerFunc matches the error-returning handlers served through middleware.CatchError.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// cacheHeader reports HIT or MISS on cached routes.
const cacheHeader = "X-Page-Cache"

var active atomic.Pointer[Cache]

// SetActive installs c as the cache used by Cached. A nil c disables caching.
func SetActive(c *Cache) {
	active.Store(c)
}

// Active returns the installed cache, or nil.
func Active() *Cache {
	return active.Load()
}

// Key identifies a page by request URI. htmx requests render without the
// page shell, so they are cached separately.
func Key(r *http.Request) string {
	key := r.Method + " " + r.URL.RequestURI()
	if utils.IsHtmxPartial(r) {
		key += " hx"
	}

	return key
}

// Cached serves GET and HEAD requests for handler from the active cache.
//
// Only 200 responses without an error are stored.
func Cached(handler HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		c := Active()
		if c == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			return handler(w, r)
		}

		key := Key(r)

		if page, ok := c.Get(key); ok {
			utils.CopyHeader(w.Header(), page.Header)
			w.Header().Set(cacheHeader, "HIT")
			w.WriteHeader(http.StatusOK)

			_, err := w.Write(page.Body)

			return err
		}

		recorder := httptest.NewRecorder()

		if err := handler(recorder, r); err != nil {
			utils.CopyHeader(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			return err
		}

		header := recorder.Header()
		if recorder.Code == http.StatusOK {
			c.Add(key, Page{Header: header, Body: recorder.Body.Bytes()})
		}

		utils.CopyHeader(w.Header(), header)
		w.Header().Set(cacheHeader, "MISS")
		w.WriteHeader(recorder.Code)

		_, err := recorder.Body.WriteTo(w)

		return err
	}
}

// IsHit reports whether the response headers mark a cache hit.
func IsHit(header http.Header) bool {
	return header.Get(cacheHeader) == "HIT"
}
