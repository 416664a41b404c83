// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"codeberg.org/jackfan/blog/assets/views"
	"codeberg.org/jackfan/blog/core/content"
	"codeberg.org/jackfan/blog/server/utils"
)

// TagsPage is the handler for the /tags page.
func TagsPage(w http.ResponseWriter, r *http.Request) error {
	setPageCacheControl(w)
	setHTMLContentType(w)

	pageData := views.TagsData{
		Title: "Tags",
		Tags:  content.Current().Tags(),
	}

	return views.Tags(pageData).Render(r.Context(), w)
}

// TagPage is the handler for the /tags/{slug} page.
//
// Slugs reach here already canonical; middleware.NormalizeURL redirects the rest.
func TagPage(w http.ResponseWriter, r *http.Request) error {
	slug := utils.GetPathVar(r, "slug")

	tc, posts, ok := content.Current().PostsByTag(slug)
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return fmt.Errorf("%w: tag %q", ErrNotFound, slug)
	}

	setPageCacheControl(w)
	setHTMLContentType(w)

	pageData := views.TagPostsData{
		Title: tc.Tag.Text,
		Tag:   tc,
		Posts: posts,
	}

	return views.TagPosts(pageData).Render(r.Context(), w)
}
