// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/jackfan/blog/assets/components/markup"
	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/server/request_context"
	"codeberg.org/jackfan/blog/server/template"
)

type navItem struct {
	Path  string
	Label string
}

var navItems = []navItem{
	{Path: "/", Label: "Home"},
	{Path: "/tags", Label: "Tags"},
}

// Layout wraps body in the site shell.
//
// htmx requests only get body inside <main>, which is what hx-select swaps.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		cd := request_context.FromContext(ctx).CommonData
		mw := markup.New(w)

		if cd.IsHtmxRequest {
			mw.Element("title", pageTitle(title, cd.SiteTitle))
			mw.Open("main", "id", "main", "class", "mx-auto max-w-3xl px-4 py-8")
			mw.Component(ctx, body)
			mw.Close("main")

			return mw.Err()
		}

		mw.Raw("<!DOCTYPE html>")
		mw.Open("html", "lang", "en")

		mw.Open("head")
		mw.Raw(`<meta charset="utf-8">`)
		mw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		mw.Element("title", pageTitle(title, cd.SiteTitle))
		mw.Open("meta", "name", "description", "content", cd.SiteDescription)
		mw.Open("link", "rel", "stylesheet", "href", "/css/main.css?v="+config.Global.Instance.FileServerCacheID)

		if src := config.Global.Site.HtmxScript; src != "" {
			mw.Open("script", "src", markup.URL(src), "defer", "defer")
			mw.Close("script")
		}

		mw.Close("head")

		mw.Open("body", "class", "bg-white text-gray-900 dark:bg-gray-950 dark:text-gray-100")

		mw.Open("header", "class", "mx-auto max-w-3xl px-4 py-6 flex items-center justify-between")
		mw.Element("a", cd.SiteTitle, "href", "/", "class", "text-xl font-semibold")
		mw.Open("nav")
		mw.Open("ul", "class", "flex gap-4")

		for _, item := range navItems {
			attrs := []string{"href", item.Path, "class", "hover:text-blue-500"}
			if template.IsFirstPathPart(cd.CurrentPath, item.Path) {
				attrs = append(attrs, "aria-current", "page")
			}

			mw.Open("li")
			mw.Element("a", item.Label, attrs...)
			mw.Close("li")
		}

		mw.Close("ul")
		mw.Close("nav")
		mw.Close("header")

		mw.Open("main", "id", "main", "class", "mx-auto max-w-3xl px-4 py-8")
		mw.Component(ctx, body)
		mw.Close("main")

		mw.Open("footer", "class", "mx-auto max-w-3xl px-4 py-6 text-sm text-gray-500")
		mw.Text(cd.SiteTitle + " " + cd.Version)

		if cd.RepoURL != "" {
			mw.Text(" · ")
			mw.Element("a", "Source", "href", markup.URL(cd.RepoURL), "rel", "noopener")
		}

		mw.Close("footer")

		mw.Close("body")
		mw.Close("html")

		return mw.Err()
	})
}

func pageTitle(title, siteTitle string) string {
	if title == "" || title == siteTitle {
		return siteTitle
	}

	return title + " · " + siteTitle
}
