// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"sync"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

var (
	gzipWrapper     func(http.Handler) http.HandlerFunc
	gzipWrapperOnce sync.Once
)

// Compress gzip-compresses responses for clients that accept it.
func Compress(w http.ResponseWriter, r *http.Request, next http.Handler) {
	gzipWrapperOnce.Do(func() {
		wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(gzhttp.DefaultMinSize))
		if err != nil {
			log.Err(err).Msg("Failed to create gzip wrapper, responses will not be compressed")

			wrapper = func(h http.Handler) http.HandlerFunc { return h.ServeHTTP }
		}

		gzipWrapper = wrapper
	})

	gzipWrapper(next).ServeHTTP(w, r)
}
