// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package markup is the small HTML writer our templ components are built on.

Components are plain templ.ComponentFunc values; Writer keeps the first write
error so component bodies can emit markup without checking every call.
*/
package markup

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrOddAttributes is returned when Open is given a name without a value.
var ErrOddAttributes = errors.New("markup: attributes must be name/value pairs")

// Writer writes escaped HTML to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a Writer over w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s verbatim. s must be trusted markup.
func (mw *Writer) Raw(s string) {
	if mw.err != nil {
		return
	}

	_, mw.err = io.WriteString(mw.w, s)
}

// Text writes s as escaped text content.
func (mw *Writer) Text(s string) {
	mw.Raw(templ.EscapeString(s))
}

// Open writes a start tag with the given attributes, given as name/value pairs.
//
// An odd number of attrs writes nothing and records ErrOddAttributes.
func (mw *Writer) Open(name string, attrs ...string) {
	if len(attrs)%2 != 0 {
		if mw.err == nil {
			mw.err = fmt.Errorf("%w: <%s> %q", ErrOddAttributes, name, attrs[len(attrs)-1])
		}

		return
	}

	mw.Raw("<" + name)

	for i := 0; i < len(attrs); i += 2 {
		mw.Raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}

	mw.Raw(">")
}

// Close writes an end tag.
func (mw *Writer) Close(name string) {
	mw.Raw("</" + name + ">")
}

// Element writes a complete element whose content is escaped text.
func (mw *Writer) Element(name, text string, attrs ...string) {
	mw.Open(name, attrs...)
	mw.Text(text)
	mw.Close(name)
}

// Component renders c in place.
func (mw *Writer) Component(ctx context.Context, c templ.Component) {
	if mw.err != nil {
		return
	}

	mw.err = c.Render(ctx, mw.w)
}

// Err returns the first error encountered, if any.
func (mw *Writer) Err() error {
	return mw.err
}

// URL sanitizes a link target the same way templ does for href attributes.
func URL(s string) string {
	return string(templ.URL(s))
}
