// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/jackfan/blog/assets/components/markup"
)

// AuthorName is the name highlighted in the greeting.
const AuthorName = "Jack Fan"

// Roles are the phrases cycled after "I am ", in display order.
//
// The cycling itself is a CSS animation on .scroll-text-mask (see css/main.css)
// that assumes exactly two entries.
var Roles = [...]string{"a Web Developer", "a Student"}

var welcomeLines = [...]string{
	"Welcome to My personal blog where I share my thoughts and learnings.",
	"In my free time,I like developing side projects and learning new technologies.",
	"This is my place for thoughts, reflections & everything in between. Have a good read!",
}

// SelfInfo renders the self-introduction block shown at the top of the index page.
func SelfInfo() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		mw := markup.New(w)

		mw.Open("div")

		mw.Open("h1", "class", "font-bold text-5xl md:text-7xl mb-4")
		mw.Text("Hi, I am ")
		mw.Element("span", AuthorName, "class", "text-blue-500")
		mw.Close("h1")

		mw.Open("h2", "class", "font-bold text-4xl flex flex-wrap items-center")
		mw.Element("p", "I am ", "class", "whitespace-pre")
		mw.Open("div", "class", "scroll-text-mask flex-1")

		for _, role := range Roles {
			mw.Element("span", role)
		}

		mw.Close("div")
		mw.Close("h2")

		mw.Open("p")

		for i, line := range welcomeLines {
			if i > 0 {
				mw.Raw("<br>")
			}

			mw.Text(line)
		}

		mw.Close("p")

		mw.Close("div")

		return mw.Err()
	})
}
