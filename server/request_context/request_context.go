// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package request_context provides per-request state management for HTTP handlers.

This package is separate because Go disallows a cyclic import graph.
*/
package request_context

import (
	"context"
	"net/http"

	"codeberg.org/jackfan/blog/core/idgen"
	"codeberg.org/jackfan/blog/server/template/commondata"
)

// RequestContext carries request-scoped data through the middleware chain.
type RequestContext struct {
	// RequestID is an identifier for tracing requests.
	RequestID string

	// Holds any critical error encountered during request processing.
	//
	// Automatically populated by middleware.CatchError when handlers return errors,
	// which interrupts normal response handling and renders an error page instead.
	RequestError error

	// HTTP status code to be sent in the response. Defaults to 200 OK.
	StatusCode int

	CommonData commondata.PageCommonData
}

// requestContextKeyType defines a unique type for a RequestContext key.
type requestContextKeyType struct{}

// requestContextKey is a unique key used to access RequestContext
// values from a context.Context.
var requestContextKey = requestContextKeyType{}

// WithRequestContext initializes a new request context and attaches it to
// the parent context.
//
// This is called once per request, first in the middleware chain.
func WithRequestContext(ctx context.Context, r *http.Request) context.Context {
	rc := RequestContext{
		RequestID:  idgen.Make(),
		StatusCode: http.StatusOK,
	}
	commondata.PopulatePageCommonData(r, &rc.CommonData)

	return context.WithValue(ctx, requestContextKey, &rc)
}

// FromContext extracts the RequestContext from a context, always returning
// a valid pointer.
//
// If no context is found, returns a zero-value instance.
func FromContext(ctx context.Context) *RequestContext {
	if v := ctx.Value(requestContextKey); v != nil {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}

	return &RequestContext{}
}

// FromRequest is a convenience wrapper for extracting RequestContext
// directly from HTTP requests.
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}
