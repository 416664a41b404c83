// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package utils holds small request helpers shared by route handlers.
package utils

import (
	"net/http"
	"strings"
)

// GetQueryParam retrieves the value of a query parameter by name, with
// surrounding whitespace removed.
//
// If the parameter is not present, it returns the provided default value or an empty string.
func GetQueryParam(r *http.Request, name string, defaultValue ...string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(name)); v != "" {
		return v
	}

	return fallback(defaultValue)
}

// GetPathVar retrieves the value of a path variable by name.
//
// If the variable is not present, it returns the provided default value or an empty string.
func GetPathVar(r *http.Request, name string, defaultValue ...string) string {
	if v := r.PathValue(name); v != "" {
		return v
	}

	return fallback(defaultValue)
}

func fallback(defaultValue []string) string {
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}
