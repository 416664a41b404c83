// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/jackfan/blog/assets/components/fragments"
	"codeberg.org/jackfan/blog/assets/components/markup"
	"codeberg.org/jackfan/blog/core/content"
	"codeberg.org/jackfan/blog/server/template"
)

// PostList renders posts as a list of summaries, each with its tag links.
func PostList(posts []content.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.New(w)

		if len(posts) == 0 {
			mw.Element("p", "No posts found.", "class", "py-4 text-gray-500")

			return mw.Err()
		}

		mw.Open("ul", "class", "divide-y divide-gray-200 dark:divide-gray-700", "id", "post-list")

		for _, post := range posts {
			mw.Open("li", "class", "py-6")
			mw.Open("article")

			if !post.Date.IsZero() {
				mw.Element("time", template.NaturalDate(post.Date),
					"datetime", post.Date.Format("2006-01-02"),
					"class", "text-base font-medium text-gray-500",
				)
			}

			mw.Element("h2", post.Title, "class", "text-2xl font-bold tracking-tight", "id", post.Slug)

			if len(post.Tags) > 0 {
				mw.Open("div", "class", "flex flex-wrap mt-2")

				for _, text := range post.Tags {
					mw.Component(ctx, fragments.Tag(text))
				}

				mw.Close("div")
			}

			if post.Summary != "" {
				mw.Element("p", post.Summary, "class", "prose max-w-none text-gray-500 mt-3")
			}

			mw.Close("article")
			mw.Close("li")
		}

		mw.Close("ul")

		return mw.Err()
	})
}
