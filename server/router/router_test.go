// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/core/content"
	"codeberg.org/jackfan/blog/server/pagecache"
)

func TestMain(m *testing.M) {
	config.Global.SetDefaults()
	config.Global.Instance.FileServerCacheID = "test-cache-id"

	content.SetCurrent(content.NewStore([]content.Post{
		{
			Title: "Building a Blog in Go",
			Slug:  "building-a-blog-in-go",
			Date:  time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
			Tags:  []string{"Go", "Web Development"},
		},
		{
			Title: "Notes on CSS",
			Slug:  "notes-on-css",
			Date:  time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC),
			Tags:  []string{"Web Development", "Café Culture"},
		},
		{
			Title: "Unfinished",
			Slug:  "unfinished",
			Tags:  []string{"Secret"},
			Draft: true,
		},
	}, false))

	os.Exit(m.Run())
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)

	return rr
}

func parse(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)

	return doc
}

func TestIndexPage(t *testing.T) {
	t.Parallel()

	rr := get(t, New(), "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300, stale-while-revalidate=600", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Header().Get("Server-Timing"), "user$GET$")

	doc := parse(t, rr)
	assert.Contains(t, doc.Find("h1").First().Text(), "Jack Fan")
	assert.Equal(t, 2, doc.Find("#post-list article").Length())
	assert.Equal(t, "Building a Blog in Go", doc.Find("#post-list h2").First().Text())
	assert.Equal(t, 1, doc.Find(`link[href="/css/main.css?v=test-cache-id"]`).Length())
}

func TestTagsPage(t *testing.T) {
	t.Parallel()

	doc := parse(t, get(t, New(), "/tags"))

	var hrefs []string

	doc.Find("#tag-list a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})

	// Most used first, then by slug; drafts excluded.
	assert.Equal(t, []string{"/tags/web-development", "/tags/caf%C3%A9-culture", "/tags/go"}, hrefs)
}

func TestTagPage(t *testing.T) {
	t.Parallel()

	rr := get(t, New(), "/tags/web-development")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parse(t, rr)
	assert.Equal(t, "Web Development", doc.Find("main h1").Text())
	assert.Equal(t, "2 posts", doc.Find("main header p").Text())
	assert.Equal(t, 2, doc.Find("#post-list article").Length())
}

func TestTagPageFollowsTagLinks(t *testing.T) {
	t.Parallel()

	router := New()
	doc := parse(t, get(t, router, "/tags"))

	doc.Find("#tag-list a").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		assert.Equal(t, http.StatusOK, get(t, router, href).Code, href)
	})
}

func TestTagsPageFiltersThroughPartial(t *testing.T) {
	t.Parallel()

	router := New()
	doc := parse(t, get(t, router, "/tags"))

	require.Equal(t, 1, doc.Find("section#tag-posts").Length())
	assert.Equal(t, config.Global.Site.HtmxScript, doc.Find("head script").AttrOr("src", ""))

	doc.Find("#tag-list a").Each(func(_ int, s *goquery.Selection) {
		hxGet := s.AttrOr("hx-get", "")
		require.True(t, strings.HasPrefix(hxGet, "/api/posts?tag="), hxGet)
		assert.Equal(t, s.AttrOr("href", ""), s.AttrOr("hx-push-url", ""))

		rr := get(t, router, hxGet, "HX-Request", "true")
		require.Equal(t, http.StatusOK, rr.Code, hxGet)
		assert.Positive(t, parse(t, rr).Find("#post-list article").Length(), hxGet)
	})
}

func TestTagPageRedirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target   string
		status   int
		location string
	}{
		{"/tags/Web%20Development", http.StatusMovedPermanently, "/tags/web-development"},
		{"/tags/go/", http.StatusPermanentRedirect, "/tags/go"},
	}

	for _, tt := range tests {
		rr := get(t, New(), tt.target)

		assert.Equal(t, tt.status, rr.Code, tt.target)
		assert.Equal(t, tt.location, rr.Header().Get("Location"), tt.target)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"/tags/secret", "/tags/nope", "/nope", "/api/posts?tag=nope"} {
		rr := get(t, New(), target)

		assert.Equal(t, http.StatusNotFound, rr.Code, target)
		assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"), target)
		assert.Equal(t, "404", parse(t, rr).Find("#error h1").Text(), target)
	}
}

func TestTagsAPI(t *testing.T) {
	t.Parallel()

	rr := get(t, New(), "/api/tags")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	require.True(t, gjson.Valid(body))

	assert.Equal(t, int64(3), gjson.Get(body, "#").Int())
	assert.Equal(t, "Web Development", gjson.Get(body, "0.text").String())
	assert.Equal(t, "web-development", gjson.Get(body, "0.slug").String())
	assert.Equal(t, "Web-Development", gjson.Get(body, "0.label").String())
	assert.Equal(t, "/tags/web-development", gjson.Get(body, "0.path").String())
	assert.Equal(t, int64(2), gjson.Get(body, "0.count").Int())
	assert.Equal(t, "café-culture", gjson.Get(body, `#(text=="Café Culture").slug`).String())
}

func TestPostsPartial(t *testing.T) {
	t.Parallel()

	all := parse(t, get(t, New(), "/api/posts"))
	assert.Equal(t, 0, all.Find("html head title").Length())
	assert.Equal(t, 2, all.Find("#post-list article").Length())

	filtered := parse(t, get(t, New(), "/api/posts?tag=go"))
	assert.Equal(t, 1, filtered.Find("#post-list article").Length())
}

func TestHtmxRequestSkipsShell(t *testing.T) {
	t.Parallel()

	doc := parse(t, get(t, New(), "/tags", "HX-Request", "true"))

	assert.Equal(t, 0, doc.Find("header nav").Length())
	assert.Equal(t, 1, doc.Find("main#main").Length())
}

func vary(rr *httptest.ResponseRecorder) string {
	return strings.Join(rr.Header().Values("Vary"), ", ")
}

func TestPagesVaryOnHtmx(t *testing.T) {
	t.Parallel()

	router := New()

	full := get(t, router, "/tags")
	partial := get(t, router, "/tags", "HX-Request", "true")

	require.NotEqual(t, full.Body.Len(), partial.Body.Len())

	for _, rr := range []*httptest.ResponseRecorder{full, partial} {
		assert.True(t, strings.HasPrefix(rr.Header().Get("Cache-Control"), "public"))
		assert.Contains(t, vary(rr), "HX-Request")
		assert.Contains(t, vary(rr), "HX-History-Restore-Request")
	}

	// The compression middleware's Vary entry is kept alongside.
	gz := get(t, router, "/tags", "Accept-Encoding", "gzip")
	assert.Contains(t, vary(gz), "HX-Request")
	assert.Contains(t, vary(gz), "Accept-Encoding")
}

func TestHistoryRestoreGetsFullPage(t *testing.T) {
	t.Parallel()

	doc := parse(t, get(t, New(), "/tags/go", "HX-Request", "true", "HX-History-Restore-Request", "true"))

	assert.Equal(t, 1, doc.Find("header nav").Length())
}

func TestStaticFiles(t *testing.T) {
	t.Parallel()

	rr := get(t, New(), "/robots.txt")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "User-agent: *")
	assert.Equal(t, `"test-cache-id"`, rr.Header().Get("ETag"))
	assert.Equal(t, "max-age=86400", rr.Header().Get("Cache-Control"))

	css := get(t, New(), "/css/main.css")
	require.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".scroll-text-mask")
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rr := get(t, New(), "/")

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, config.BuildVersion, rr.Header().Get("Blog-Version"))
}

func TestCompression(t *testing.T) {
	t.Parallel()

	rr := get(t, New(), "/", "Accept-Encoding", "gzip")
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)

	html, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(html), "<!DOCTYPE html>"))
}

// TestPageCache swaps the package-level page cache, so it does not run in parallel
// with the other tests.
func TestPageCache(t *testing.T) {
	c, err := pagecache.New(8)
	require.NoError(t, err)

	pagecache.SetActive(c)
	t.Cleanup(func() { pagecache.SetActive(nil) })

	router := New()

	first := get(t, router, "/tags/go")
	second := get(t, router, "/tags/go")

	assert.Equal(t, "MISS", first.Header().Get("X-Page-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Page-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, vary(second), "HX-Request")

	// Errors are never cached.
	get(t, router, "/tags/nope")
	assert.Equal(t, 1, c.Len())
}
