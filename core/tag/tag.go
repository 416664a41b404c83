// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package tag derives the URL slug, display label and page path of a post tag.

Nothing here validates input: an empty or whitespace-only tag produces an
empty slug and label, and therefore the bare "/tags/" path.
*/
package tag

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// PathPrefix is the route prefix that tag pages live under.
//
// Anything linking to a tag page depends on this staying stable.
const PathPrefix = "/tags/"

// Tag is a short human-readable label attached to a post, e.g. "Web Development".
type Tag struct {
	Text string
}

// New returns the Tag for text.
func New(text string) Tag {
	return Tag{Text: text}
}

// Slug returns the URL-safe form of the tag. See [Slug].
func (t Tag) Slug() string {
	return Slug(t.Text)
}

// Label returns the display form of the tag. See [Label].
func (t Tag) Label() string {
	return Label(t.Text)
}

// Path returns the tag page path. See [Path].
func (t Tag) Path() string {
	return Path(t.Text)
}

// Slug lower-cases text and joins its words with hyphens.
//
// Surrounding whitespace is dropped, each internal run of whitespace becomes a
// single hyphen, and punctuation other than '-' and '_' is removed. Letters
// outside ASCII are kept after NFKC normalization, so callers building URLs
// must still path-escape the result (as [Path] does).
//
//	Slug("Web Development") == "web-development"
//	Slug("Node.js")         == "nodejs"
func Slug(text string) string {
	// A Caser is stateful and must not be shared between goroutines.
	lowered := cases.Lower(language.Und).String(norm.NFKC.String(text))

	var sb strings.Builder

	sb.Grow(len(lowered))

	pendingHyphen := false

	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			if sb.Len() > 0 {
				pendingHyphen = true
			}
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '-', r == '_':
			if pendingHyphen {
				sb.WriteByte('-')

				pendingHyphen = false
			}

			sb.WriteRune(r)
		default:
			// punctuation and symbols are dropped
		}
	}

	return sb.String()
}

// Label joins the words of text with hyphens, keeping their case.
//
//	Label("Web Development") == "Web-Development"
func Label(text string) string {
	return strings.Join(strings.Fields(text), "-")
}

// Path returns PathPrefix followed by the path-escaped slug of text.
func Path(text string) string {
	return PathPrefix + url.PathEscape(Slug(text))
}

// IsCanonical reports whether slug is already in the form [Slug] produces.
func IsCanonical(slug string) bool {
	return Slug(slug) == slug
}
