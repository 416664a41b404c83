// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// NaturalDate formats a post date as e.g. "March 1, 2024".
func NaturalDate(date time.Time) string {
	return date.Format("January 2, 2006")
}

// PostCount returns "1 post" or "N posts".
func PostCount(n int) string {
	if n == 1 {
		return "1 post"
	}

	return strconv.Itoa(n) + " posts"
}

// IsFirstPathPart checks if the first part of the current path matches the given path.
func IsFirstPathPart(currentPath, pathToCheck string) bool {
	currentPath = strings.TrimRight(currentPath, "/")
	pathToCheck = strings.TrimRight(pathToCheck, "/")

	// The root path only matches itself.
	if pathToCheck == "" {
		return currentPath == ""
	}

	const maxPathParts = 3

	parts := strings.SplitN(currentPath, "/", maxPathParts)

	// Expect at least the empty string before the leading slash and the first part.
	const minPathParts = 2
	if len(parts) < minPathParts {
		return false
	}

	return "/"+parts[1] == pathToCheck
}

// RenderToString converts a templ.Component to its string representation.
//
// Handling errors in templates is awkward, so if an error occurs during rendering,
// it is formatted into a string and returned.
func RenderToString(c templ.Component) string {
	var buffer bytes.Buffer

	err := c.Render(context.Background(), &buffer)
	if err != nil {
		return fmt.Errorf("templ: failed to render component: %w", err).Error()
	}

	return buffer.String()
}
