// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/pprof"

	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/server/assets"
	"codeberg.org/jackfan/blog/server/middleware"
	"codeberg.org/jackfan/blog/server/pagecache"
	"codeberg.org/jackfan/blog/server/routes"
)

// DefineRoutes registers every route on the router's mux.
func (router *Router) DefineRoutes() {
	fileServerHandler := fileServer()

	router.Handle("GET /robots.txt", fileServerHandler)
	router.Handle("GET /css/", fileServerHandler)

	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(pagecache.Cached(routes.IndexPage)))

	router.HandleFunc("GET /tags", middleware.CatchError(pagecache.Cached(routes.TagsPage)))
	router.HandleFunc("GET /tags/{slug}", middleware.CatchError(pagecache.Cached(routes.TagPage)))

	// REST API routes (JSON, and partials for htmx)
	router.HandleFunc("GET /api/tags", middleware.CatchError(pagecache.Cached(routes.TagsAPI)))
	router.HandleFunc("GET /api/posts", middleware.CatchError(pagecache.Cached(routes.PostsPartial)))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}

	// Everything else gets the themed 404 page.
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))
}

// fileServer serves the embedded static files.
func fileServer() http.HandlerFunc {
	fileServer := http.FileServerFS(assets.FS)

	return func(w http.ResponseWriter, r *http.Request) {
		// go:embed requires a rebuild for any change, so a per-instance ID is
		// a valid strong validator.
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		w.Header().Set("ETag", `"`+config.Global.Instance.FileServerCacheID+`"`)
		fileServer.ServeHTTP(w, r)
	}
}

func registerDebugRoutes(router *Router) {
	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
}
