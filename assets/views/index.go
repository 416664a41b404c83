// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/jackfan/blog/assets/components/fragments"
	"codeberg.org/jackfan/blog/assets/components/markup"
	"codeberg.org/jackfan/blog/assets/components/partials"
	"codeberg.org/jackfan/blog/core/content"
)

// IndexData is the data for the index page.
type IndexData struct {
	Title  string
	Recent []content.Post
	// Total is the number of published posts, shown when Recent is a subset.
	Total int
}

// Index renders the index page: the self introduction followed by recent posts.
func Index(data IndexData) templ.Component {
	return Layout(data.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.New(w)

		mw.Component(ctx, fragments.SelfInfo())

		mw.Open("section", "class", "mt-12")
		mw.Element("h2", "Latest posts", "class", "text-3xl font-bold mb-4")
		mw.Component(ctx, partials.PostList(data.Recent))

		if data.Total > len(data.Recent) {
			mw.Open("p", "class", "mt-4")
			mw.Element("a", "Browse all posts by tag", "href", "/tags", "class", "text-blue-500")
			mw.Close("p")
		}

		mw.Close("section")

		return mw.Err()
	}))
}
