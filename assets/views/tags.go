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
	"codeberg.org/jackfan/blog/server/template"
)

// TagsData is the data for the tag index page.
type TagsData struct {
	Title string
	Tags  []content.TagCount
}

// tagPostsTarget receives the post list when a tag is picked on the tags page.
const tagPostsTarget = "#tag-posts"

// Tags renders every tag with its post count. With htmx loaded, picking a tag
// swaps its posts in below the list instead of leaving the page.
func Tags(data TagsData) templ.Component {
	return Layout(data.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.New(w)

		mw.Element("h1", "Tags", "class", "text-4xl font-bold mb-6")

		if len(data.Tags) == 0 {
			mw.Element("p", "No tags found.", "class", "text-gray-500")

			return mw.Err()
		}

		mw.Open("div", "class", "flex flex-wrap", "id", "tag-list")

		for _, tc := range data.Tags {
			mw.Component(ctx, fragments.TagCount(tc.Tag.Text, tc.Count,
				fragments.PostFilterAttrs(tc.Tag.Text, tagPostsTarget)...))
		}

		mw.Close("div")

		mw.Open("section", "id", "tag-posts", "class", "mt-8", "aria-live", "polite")
		mw.Close("section")

		return mw.Err()
	}))
}

// TagPostsData is the data for a single tag page.
type TagPostsData struct {
	Title string
	Tag   content.TagCount
	Posts []content.Post
}

// TagPosts renders the posts carrying one tag.
func TagPosts(data TagPostsData) templ.Component {
	return Layout(data.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.New(w)

		mw.Open("header", "class", "mb-6")
		mw.Element("h1", data.Tag.Tag.Text, "class", "text-4xl font-bold")
		mw.Element("p", template.PostCount(data.Tag.Count), "class", "text-gray-500")
		mw.Close("header")

		mw.Component(ctx, partials.PostList(data.Posts))

		return mw.Err()
	}))
}
