// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"

	"codeberg.org/jackfan/blog/core/tag"
)

// NormalizeURL is a middleware that handles URL normalization by:
// 1. Removing trailing slashes from URLs (except root).
// 2. Redirecting tag pages to the slug form of their tag.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	// Check for trailing slash and redirect if found
	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	if target, ok := canonicalTagPath(r); ok {
		u := *r.URL
		u.Path, u.RawPath = target, ""

		http.Redirect(w, r, u.String(), http.StatusMovedPermanently)

		return
	}

	// No normalization needed, continue to next handler
	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root).
func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/")
}

// removeTrailingSlash removes trailing slashes and redirects.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	u := *r.URL

	u.Path = strings.TrimRight(u.Path, "/")
	if u.Path == "" {
		u.Path = "/"
	}

	u.RawPath = ""

	// Only the path changes, so the target stays on this host.
	http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
}

// canonicalTagPath returns the tag page path r should be redirected to, if any.
//
// A tag segment that slugifies to nothing is left alone so the router can 404 it.
func canonicalTagPath(r *http.Request) (string, bool) {
	segment, found := strings.CutPrefix(r.URL.Path, tag.PathPrefix)
	if !found || segment == "" || strings.Contains(segment, "/") {
		return "", false
	}

	if tag.IsCanonical(segment) || tag.Slug(segment) == "" {
		return "", false
	}

	// Unescaped: the caller escapes when building the Location header.
	return tag.PathPrefix + tag.Slug(segment), true
}
