// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package router assembles the blog's routes and middleware chain.
package router

import (
	"net/http"

	"codeberg.org/jackfan/blog/server/middleware"
)

// Router wraps http.ServeMux and runs a middleware chain in front of it.
type Router struct {
	*http.ServeMux

	middlewares []middleware.Middleware
}

// NewRouter creates a new Router instance with no routes.
func NewRouter() *Router {
	return &Router{
		ServeMux: http.NewServeMux(),
	}
}

// New returns a Router with every route and middleware registered.
func New() *Router {
	router := NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	return router
}

// Use appends m to the chain. Middlewares run in the order they were added.
func (router *Router) Use(m middleware.Middleware) {
	router.middlewares = append(router.middlewares, m)
}

// serve runs router.middlewares[i:] and then the mux.
func (router *Router) serve(i int, w http.ResponseWriter, r *http.Request) {
	if i == len(router.middlewares) {
		router.ServeMux.ServeHTTP(w, r)

		return
	}

	router.middlewares[i](w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.serve(i+1, w, r)
	}))
}

// ServeHTTP runs the request through the chain.
func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.serve(0, w, r)
}
