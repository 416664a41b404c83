// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/jackfan/blog/assets/views"
	"codeberg.org/jackfan/blog/server/request_context"
)

// ErrNotFound is returned by handlers for unknown pages.
var ErrNotFound = errors.New("not found")

// ErrorPage renders an error page for the request's RequestError and StatusCode.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	rc := request_context.FromRequest(r)

	pageData := views.ErrorData{
		Title:      "Error",
		Error:      rc.RequestError,
		StatusCode: rc.StatusCode,
	}

	if err := views.Error(pageData).Render(r.Context(), w); err != nil {
		log.Err(err).
			Str("request_id", rc.RequestID).
			Msg("Failed to render the error page")
	}
}

// NotFound is the fallback handler for paths no route matches.
func NotFound(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusNotFound)

	return ErrNotFound
}
