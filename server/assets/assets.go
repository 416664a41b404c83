// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the application's embedded static assets.
*/
package assets

import (
	"embed"
)

// FS holds the stylesheets and robots.txt, rooted at this directory.
//
//go:embed css robots.txt
var FS embed.FS
