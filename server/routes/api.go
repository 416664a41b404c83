// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"codeberg.org/jackfan/blog/assets/components/partials"
	"codeberg.org/jackfan/blog/core/content"
	"codeberg.org/jackfan/blog/server/utils"
)

// tagJSON is the wire form of a tag in /api/tags.
type tagJSON struct {
	Text  string `json:"text"`
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// TagsAPI is the handler for /api/tags.
func TagsAPI(w http.ResponseWriter, _ *http.Request) error {
	tags := content.Current().Tags()

	out := make([]tagJSON, 0, len(tags))
	for _, tc := range tags {
		out = append(out, tagJSON{
			Text:  tc.Tag.Text,
			Slug:  tc.Tag.Slug(),
			Label: tc.Tag.Label(),
			Path:  tc.Tag.Path(),
			Count: tc.Count,
		})
	}

	setPageCacheControl(w)
	w.Header().Set("Content-Type", "application/json")

	return json.NewEncoder(w).Encode(out)
}

// PostsPartial is the handler for /api/posts. It renders the post list
// fragment, optionally filtered by the tag slug in ?tag=.
func PostsPartial(w http.ResponseWriter, r *http.Request) error {
	store := content.Current()
	posts := store.Posts()

	if slug := utils.GetQueryParam(r, "tag"); slug != "" {
		var ok bool

		_, posts, ok = store.PostsByTag(slug)
		if !ok {
			w.WriteHeader(http.StatusNotFound)

			return fmt.Errorf("%w: tag %q", ErrNotFound, slug)
		}
	}

	setPageCacheControl(w)
	setHTMLContentType(w)

	return partials.PostList(posts).Render(r.Context(), w)
}
