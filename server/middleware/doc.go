// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain for the blog.

Every middleware has the [Middleware] signature and is adapted into an
http.Handler with [Wrap]. The chain itself is assembled in the router package.
*/
package middleware
