// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 300
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 600

	defaultPort = "8080"
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = defaultPort

	cfg.Site.Title = "Jack Fan's Blog"
	cfg.Site.Description = "Thoughts, reflections & everything in between."
	cfg.Site.RepoURL = "https://codeberg.org/jackfan/blog"
	cfg.Site.HtmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

	cfg.Content.Directory = "./content/posts"
	cfg.Content.IncludeDrafts = false
	cfg.Content.RecentPosts = 5

	cfg.Cache.Enabled = false
	cfg.Cache.Size = 64

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Response.Compression = true

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = false
	cfg.Limiter.Rate = 2.0
	cfg.Limiter.Burst = 60
	cfg.Limiter.IPv4Prefix = 24
	cfg.Limiter.IPv6Prefix = 48
}
