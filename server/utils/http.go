// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net/http"
	"slices"
)

// IsHtmxPartial reports whether r is an htmx swap that wants only the page
// content. History restores ask for the whole page even though they carry
// HX-Request.
func IsHtmxPartial(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" &&
		r.Header.Get("HX-History-Restore-Request") != "true"
}

// CopyHeader copies src into dst, replacing existing values except for Vary,
// whose values are merged so outer middleware entries survive.
func CopyHeader(dst, src http.Header) {
	for key, values := range src {
		if key != "Vary" {
			dst[key] = slices.Clone(values)

			continue
		}

		for _, v := range values {
			if !slices.Contains(dst.Values(key), v) {
				dst.Add(key, v)
			}
		}
	}
}
