// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	errInvalidPort          = errors.New("port must be a number between 0 and 65535")
	errEmptyContentDir      = errors.New("content directory cannot be empty")
	errInvalidRecentPosts   = errors.New("recentPosts cannot be negative")
	errInvalidCacheSize     = errors.New("cache size must be positive when the cache is enabled")
	errInvalidLogLevel      = errors.New("invalid Log.Level")
	errInvalidLogFormat     = errors.New("invalid Log.Format")
	errInvalidRepoURL       = errors.New("repo URL must be an absolute http(s) URL")
	errInvalidHtmxScript    = errors.New("htmx script must be an absolute http(s) URL or a path starting with /")
	errInvalidLimiterRate   = errors.New("limiter rate must be positive")
	errInvalidLimiterBurst  = errors.New("limiter burst must be positive")
	errInvalidIPv4Prefix    = errors.New("IPv4 prefix must be between 0 and 32")
	errInvalidIPv6Prefix    = errors.New("IPv6 prefix must be between 0 and 128")
	errInvalidPassListEntry = errors.New("limiter pass list entries must be IPs or CIDRs")
	errNegativeHTTPCache    = errors.New("cache-control durations cannot be negative")
)

const maxPort = 65535

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.Host == "" {
		cfg.Basic.Host = "localhost"
		log.Info().
			Str("host", cfg.Basic.Host).
			Msg("Binding to default host")
	}

	if cfg.Basic.Port == "" {
		cfg.Basic.Port = defaultPort
		log.Info().
			Str("port", cfg.Basic.Port).
			Msg("Using default port")
	}

	if port, err := strconv.Atoi(cfg.Basic.Port); err != nil || port < 0 || port > maxPort {
		return fmt.Errorf("%w: %q", errInvalidPort, cfg.Basic.Port)
	}

	if cfg.Content.Directory == "" {
		return errEmptyContentDir
	}

	if cfg.Content.RecentPosts < 0 {
		return errInvalidRecentPosts
	}

	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return errInvalidCacheSize
	}

	if cfg.HTTPCache.MaxAge < 0 || cfg.HTTPCache.StaleWhileRevalidate < 0 {
		return errNegativeHTTPCache
	}

	if _, ok := logLevels[cfg.Log.Level]; !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	if cfg.Site.RepoURL != "" {
		u, err := url.Parse(cfg.Site.RepoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", errInvalidRepoURL, cfg.Site.RepoURL)
		}
	}

	if cfg.Site.HtmxScript != "" && !validScriptSource(cfg.Site.HtmxScript) {
		return fmt.Errorf("%w: %q", errInvalidHtmxScript, cfg.Site.HtmxScript)
	}

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	if cfg.Limiter.Rate <= 0 {
		return errInvalidLimiterRate
	}

	if cfg.Limiter.Burst <= 0 {
		return errInvalidLimiterBurst
	}

	if cfg.Limiter.IPv4Prefix < 0 || cfg.Limiter.IPv4Prefix > 32 {
		return errInvalidIPv4Prefix
	}

	if cfg.Limiter.IPv6Prefix < 0 || cfg.Limiter.IPv6Prefix > 128 {
		return errInvalidIPv6Prefix
	}

	for _, entry := range cfg.Limiter.PassIPs {
		if net.ParseIP(entry) != nil {
			continue
		}

		if _, _, err := net.ParseCIDR(entry); err != nil {
			return fmt.Errorf("%w: %q", errInvalidPassListEntry, entry)
		}
	}

	return nil
}

func validScriptSource(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	if u.Host == "" {
		return u.Scheme == "" && strings.HasPrefix(u.Path, "/")
	}

	return u.Scheme == "http" || u.Scheme == "https"
}
