// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/jackfan/blog/assets/views"
	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/core/content"
)

// IndexPage is the handler for the / page.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	store := content.Current()

	setPageCacheControl(w)
	setHTMLContentType(w)

	pageData := views.IndexData{
		Title:  config.Global.Site.Title,
		Recent: store.Recent(config.Global.Content.RecentPosts),
		Total:  store.Len(),
	}

	return views.Index(pageData).Render(r.Context(), w)
}
