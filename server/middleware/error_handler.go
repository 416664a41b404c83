// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/core/audit"
	"codeberg.org/jackfan/blog/server/pagecache"
	"codeberg.org/jackfan/blog/server/request_context"
	"codeberg.org/jackfan/blog/server/routes"
	"codeberg.org/jackfan/blog/server/utils"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered in an httptest.ResponseRecorder and any
// returned error is stored in the request context. Then:
//   - An error without an HTTP error status (status < 400) is an unhandled
//     internal error: the buffered response is discarded and a 500 page rendered.
//   - A 404 status also discards the buffered response in favour of the themed
//     error page.
//   - Anything else is written to the client as recorded.
//
// Finally the request is logged through an audit span.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			Destination: audit.ToUser,
			RequestID:   ctx.RequestID,
			Method:      r.Method,
			URL:         r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		// Execute the handler, capturing its output and any returned error.
		err := handler(recorder, r)

		ctx.RequestError = err

		switch {
		case (ctx.RequestError != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound:
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(ctx.StatusCode)
			routes.ErrorPage(w, r) // ErrorPage uses ctx.RequestError and ctx.StatusCode

		default:
			ctx.StatusCode = recorder.Code
			utils.CopyHeader(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			span.Size = recorder.Body.Len()
			span.CacheHit = pagecache.IsHit(recorder.Header())

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError

		// Log the application response if not excluded.
		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.End()
			span.Log()
		}
	}
}
