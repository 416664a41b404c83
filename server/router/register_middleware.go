// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/server/middleware"
	"codeberg.org/jackfan/blog/server/middleware/limiter"
	"codeberg.org/jackfan/blog/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain according to config.Global.
func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)

	if config.Global.Response.Compression {
		router.Use(middleware.Compress)
	}

	router.Use(middleware.NormalizeURL)                // trailing slashes and tag slugs
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all pages need this

	if config.Global.Limiter.Enabled {
		router.Use(limiter.Evaluate)
	}
}
