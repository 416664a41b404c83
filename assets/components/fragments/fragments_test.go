// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(html))
	require.NoError(t, err)

	return doc
}

func TestTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantHref  string
		wantLabel string
	}{
		{"two words", "Web Development", "/tags/web-development", "Web-Development"},
		{"single word", "Go", "/tags/go", "Go"},
		{"punctuation", "Node.js", "/tags/nodejs", "Node.js"},
		{"markup is escaped", "<script>", "/tags/script", "<script>"},
		{"empty text", "", "/tags/", ""},
		{"whitespace only", "   ", "/tags/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, render(t, Tag(tt.text)))

			links := doc.Find("a")
			require.Equal(t, 1, links.Length())

			href, ok := links.Attr("href")
			require.True(t, ok)
			assert.Equal(t, tt.wantHref, href)
			assert.Equal(t, tt.wantLabel, links.Text())
			assert.True(t, links.HasClass("uppercase"))
			assert.Zero(t, doc.Find("script").Length())
		})
	}
}

func TestTagIsIdempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render(t, Tag("Web Development")), render(t, Tag("Web Development")))
}

func TestTagHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer

	assert.ErrorIs(t, Tag("Go").Render(ctx, &buf), context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestTagCount(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, TagCount("Web Development", 3)))

	href, _ := doc.Find("a").Attr("href")
	assert.Equal(t, "/tags/web-development", href)
	assert.Equal(t, "(3)", doc.Find("span").Text())
	assert.Zero(t, doc.Find("a[hx-get]").Length())
}

func TestTagCountWithPostFilter(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, TagCount("Café Culture", 2, PostFilterAttrs("Café Culture", "#tag-posts")...)))

	a := doc.Find("a")
	assert.Equal(t, "/tags/caf%C3%A9-culture", a.AttrOr("href", ""))
	assert.Equal(t, "/api/posts?tag=caf%C3%A9-culture", a.AttrOr("hx-get", ""))
	assert.Equal(t, "#tag-posts", a.AttrOr("hx-target", ""))
	assert.Equal(t, "/tags/caf%C3%A9-culture", a.AttrOr("hx-push-url", ""))
}

func TestSelfInfo(t *testing.T) {
	t.Parallel()

	html := render(t, SelfInfo())
	doc := parse(t, html)

	assert.Contains(t, doc.Find("h1").Text(), "Jack Fan")
	assert.Equal(t, "Jack Fan", doc.Find("h1 span.text-blue-500").Text())

	var roles []string

	doc.Find(".scroll-text-mask span").Each(func(_ int, s *goquery.Selection) {
		roles = append(roles, s.Text())
	})

	assert.Equal(t, []string{"a Web Developer", "a Student"}, roles)
	assert.Equal(t, "I am ", doc.Find("h2 p.whitespace-pre").Text())
	assert.Equal(t, 2, doc.Find("br").Length())
	assert.Contains(t, doc.Find("div > p").Last().Text(), "Have a good read!")

	// Rendering has no inputs and no state.
	assert.Equal(t, html, render(t, SelfInfo()))
}
