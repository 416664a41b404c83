// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	servertiming "github.com/mitchellh/go-server-timing"
)

// WithServerTiming attaches a Server-Timing header to the request context and
// writes it to the response.
func WithServerTiming(w http.ResponseWriter, r *http.Request, next http.Handler) {
	servertiming.Middleware(next, nil).ServeHTTP(w, r)
}
