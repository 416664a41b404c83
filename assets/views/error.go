// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/jackfan/blog/assets/components/markup"
	"codeberg.org/jackfan/blog/config"
)

// ErrorData is the data for the error page.
type ErrorData struct {
	Title      string
	Error      error
	StatusCode int
}

// Error renders the error page.
//
// The underlying error is only shown in development mode.
func Error(data ErrorData) templ.Component {
	return Layout(data.Title, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		mw := markup.New(w)

		status := data.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}

		mw.Open("section", "class", "py-12 text-center", "id", "error")
		mw.Element("h1", strconv.Itoa(status), "class", "text-6xl font-extrabold")
		mw.Element("p", http.StatusText(status), "class", "text-2xl mt-2")

		if status == http.StatusNotFound {
			mw.Element("p", "Sorry, we couldn't find this page.", "class", "mt-4 text-gray-500")
		}

		if data.Error != nil && config.Global.Development.InDevelopment {
			mw.Element("pre", data.Error.Error(), "class", "mt-6 text-left whitespace-pre-wrap text-red-600")
		}

		mw.Open("p", "class", "mt-8")
		mw.Element("a", "Back to homepage", "href", "/", "class", "text-blue-500")
		mw.Close("p")
		mw.Close("section")

		return mw.Err()
	}))
}
