// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"codeberg.org/jackfan/blog/config"
)

// setPageCacheControl lets shared caches keep a page for HTTPCache.MaxAge.
//
// htmx requests get a shorter body at the same URL, so caches must key on HX-Request.
func setPageCacheControl(w http.ResponseWriter) {
	w.Header().Add("Vary", "HX-Request, HX-History-Restore-Request")

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))
}

// setHTMLContentType marks the response as HTML.
func setHTMLContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
