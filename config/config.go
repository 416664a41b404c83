// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/jackfan/blog/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host string `env:"BLOG_HOST,overwrite" yaml:"host"`
		Port string `env:"BLOG_PORT,overwrite" yaml:"port"`
	} `yaml:"basic"`

	Site struct {
		Title       string `env:"BLOG_SITE_TITLE,overwrite"       yaml:"title"`
		Description string `env:"BLOG_SITE_DESCRIPTION,overwrite" yaml:"description"`
		RepoURL     string `env:"BLOG_REPO_URL,overwrite"         yaml:"repoUrl"`
		HtmxScript  string `env:"BLOG_HTMX_SCRIPT,overwrite"      yaml:"htmxScript"`
	} `yaml:"site"`

	Content struct {
		Directory     string `env:"BLOG_CONTENT_DIR,overwrite"      yaml:"directory"`
		IncludeDrafts bool   `env:"BLOG_INCLUDE_DRAFTS,overwrite"   yaml:"includeDrafts"`
		RecentPosts   int    `env:"BLOG_RECENT_POSTS,overwrite"     yaml:"recentPosts"`
	} `yaml:"content"`

	Cache struct {
		Enabled bool `env:"BLOG_CACHE,overwrite"      yaml:"enabled"`
		Size    int  `env:"BLOG_CACHE_SIZE,overwrite" yaml:"cacheSize"`
	} `yaml:"cache"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"BLOG_CACHE_CONTROL_MAX_AGE,overwrite"                yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"BLOG_CACHE_CONTROL_STALE_WHILE_REVALIDATE,overwrite" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Response struct {
		Compression bool `env:"BLOG_COMPRESSION,overwrite" yaml:"compression"`
	} `yaml:"response"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
	} `yaml:"-"`

	Development struct {
		InDevelopment bool `env:"BLOG_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"BLOG_LOG_LEVEL,overwrite"   yaml:"logLevel"`
		Outputs []string `env:"BLOG_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"BLOG_LOG_FORMAT,overwrite"  yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled    bool     `env:"BLOG_LIMITER,overwrite"             yaml:"enabled"`
		Rate       float64  `env:"BLOG_LIMITER_RATE,overwrite"        yaml:"rate"`
		Burst      int      `env:"BLOG_LIMITER_BURST,overwrite"       yaml:"burst"`
		PassIPs    []string `env:"BLOG_LIMITER_PASS_IPS,overwrite"    yaml:"passList"`
		IPv4Prefix int      `env:"BLOG_LIMITER_IPV4_PREFIX,overwrite" yaml:"ipv4Prefix"`
		IPv6Prefix int      `env:"BLOG_LIMITER_IPV6_PREFIX,overwrite" yaml:"ipv6Prefix"`
	} `yaml:"limiter"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Precedence: -config flag, then BLOG_CONFIGFILE, then ./config.yaml
	// falling back to ./config.yml.
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("BLOG_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue

		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	log.Debug().
		Str("path", configFilePath).
		Bool("from_flag", configFlagUserSet).
		Msg("Resolved configuration file path")

	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

var staticSkippedPathPrefixes = []string{"/css/", "/img/", "/robots.txt"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	if cfg.Development.InDevelopment {
		return false
	}

	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// ScriptOrigin returns the scheme and host serving Site.HtmxScript, or an
// empty string when the script is served from this origin or disabled.
func (cfg *ServerConfig) ScriptOrigin() string {
	u, err := url.Parse(cfg.Site.HtmxScript)
	if err != nil || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
