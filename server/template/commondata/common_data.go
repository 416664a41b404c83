// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package commondata

import (
	"net/http"

	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/server/utils"
)

// PageCommonData holds common variables accessible in templates and handlers.
//
// It is automatically populated for each request and attached to the
// request_context.RequestContext.
type PageCommonData struct {
	// SiteTitle is shown in the header and appended to page titles.
	SiteTitle string

	// SiteDescription fills the description meta tag.
	SiteDescription string

	// RepoURL is linked from the footer.
	RepoURL string

	// Version is the build version shown in the footer.
	Version string

	// CurrentPath is the URL path from request (e.g., "/tags/go").
	CurrentPath string

	// IsHtmxRequest is true for htmx swaps, which render without the page shell.
	IsHtmxRequest bool
}

// PopulatePageCommonData fills cd from the request and the global configuration.
func PopulatePageCommonData(r *http.Request, cd *PageCommonData) {
	cd.SiteTitle = config.Global.Site.Title
	cd.SiteDescription = config.Global.Site.Description
	cd.RepoURL = config.Global.Site.RepoURL
	cd.Version = config.BuildVersion
	cd.CurrentPath = r.URL.Path
	cd.IsHtmxRequest = utils.IsHtmxPartial(r)
}
