// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package partials

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/jackfan/blog/core/content"
)

func TestPostList(t *testing.T) {
	t.Parallel()

	posts := []content.Post{
		{
			Title:   "Hello",
			Slug:    "hello",
			Date:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"Web Development", "Go"},
			Summary: "First post.",
		},
		{Title: "Untagged", Slug: "untagged"},
	}

	var buf bytes.Buffer
	require.NoError(t, PostList(posts).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	items := doc.Find("#post-list > li")
	require.Equal(t, 2, items.Length())

	first := items.First()
	assert.Equal(t, "Hello", first.Find("h2").Text())
	assert.Equal(t, "2024-03-01", first.Find("time").AttrOr("datetime", ""))
	assert.Equal(t, "First post.", first.Find("p").Text())

	var hrefs []string

	first.Find("a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})

	assert.Equal(t, []string{"/tags/web-development", "/tags/go"}, hrefs)

	second := items.Last()
	assert.Zero(t, second.Find("time").Length(), "zero dates are not shown")
	assert.Zero(t, second.Find("a").Length())
}

func TestPostListEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PostList(nil).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "No posts found.")
}
