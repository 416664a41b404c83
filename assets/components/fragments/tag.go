// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/jackfan/blog/assets/components/markup"
	"codeberg.org/jackfan/blog/core/tag"
)

// tagClasses styles a tag as a small outlined pill.
const tagClasses = "mr-3 text-sm font-medium uppercase border-blue-200 text-blue-300 hover:bg-blue-400 " +
	"hover:text-white border p-1 rounded-md overflow-hidden transition-all"

// Tag renders a link to the tag page for text.
//
// The link points at tag.Path(text) and shows tag.Label(text). Empty text is
// not rejected: it renders a link to "/tags/" with no label.
func Tag(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		mw := markup.New(w)
		tagLink(mw, text)

		return mw.Err()
	})
}

func tagLink(mw *markup.Writer, text string, attrs ...string) {
	mw.Element("a", tag.Label(text), append([]string{
		"href", markup.URL(tag.Path(text)),
		"class", tagClasses,
	}, attrs...)...)
}

// PostFilterAttrs returns htmx attributes that swap the posts carrying text
// into target, keeping the tag page as the address bar URL.
func PostFilterAttrs(text, target string) []string {
	return []string{
		"hx-get", "/api/posts?tag=" + url.QueryEscape(tag.Slug(text)),
		"hx-target", target,
		"hx-push-url", tag.Path(text),
	}
}

// TagCount renders a tag link followed by the number of posts carrying it.
// linkAttrs are added to the link, e.g. PostFilterAttrs.
func TagCount(text string, count int, linkAttrs ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		mw := markup.New(w)
		mw.Open("div", "class", "mt-2 mb-2 mr-5")
		tagLink(mw, text, linkAttrs...)
		mw.Element("span", "("+strconv.Itoa(count)+")",
			"class", "-ml-2 text-sm font-semibold uppercase text-gray-600 dark:text-gray-300",
		)
		mw.Close("div")

		return mw.Err()
	})
}
