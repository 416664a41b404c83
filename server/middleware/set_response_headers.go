// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync/atomic"

	"codeberg.org/jackfan/blog/config"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Content-Security-Policy, Blog-Version and Blog-Revision are added
	// dynamically in SetResponseHeaders.
	baseHeaders = http.Header{
		"Referrer-Policy":        {"no-referrer"},
		"X-Frame-Options":        {"DENY"},
		"X-Content-Type-Options": {"nosniff"},
		"Permissions-Policy":     {strings.Join(defaultPermissionsPolicy, ", ")},
	}

	// baseCSP only allows same-origin resources. script-src is appended by
	// contentSecurityPolicy so the htmx script origin can be allowed.
	baseCSP = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"font-src 'self'",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"payment=()",
		"usb=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	headers.Set("Content-Security-Policy", contentSecurityPolicy())

	setCacheControl(headers, r.URL.Path)

	headers.Set("Blog-Version", config.BuildVersion)
	headers.Set("Blog-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

// contentSecurityPolicy allows scripts from this origin and from the
// configured htmx script origin.
func contentSecurityPolicy() string {
	scriptSrc := "script-src 'self'"
	if origin := config.Global.ScriptOrigin(); origin != "" {
		scriptSrc += " " + origin
	}

	return strings.Join(append(slices.Clone(baseCSP), scriptSrc), "; ") + ";"
}

var firstDevResponse atomic.Bool

// invalidateCacheInDevelopment clears the browser cache on the first response
// after a development restart.
func invalidateCacheInDevelopment(headers http.Header) {
	if firstDevResponse.CompareAndSwap(false, true) {
		headers.Set("Clear-Site-Data", `"cache"`)
	}
}

// setCacheControl sets a default Cache-Control header by path.
//
// Page handlers overwrite it with the HTTPCache settings.
func setCacheControl(headers http.Header, path string) {
	// Default to only storing in the browser cache and forcing revalidation
	cacheDuration := "private, no-cache"

	// Stylesheets are fingerprinted with the instance cache ID (1 week)
	if strings.HasPrefix(path, "/css/") {
		cacheDuration = "max-age=604800"
	}

	// Images can be cached for 2 weeks
	if strings.HasPrefix(path, "/img/") {
		cacheDuration = "max-age=1209600"
	}

	// Text files (robots.txt) get moderate caching (1 day)
	if strings.HasSuffix(path, ".txt") {
		cacheDuration = "max-age=86400"
	}

	headers.Set("Cache-Control", cacheDuration)
}
