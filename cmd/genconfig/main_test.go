// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/jackfan/blog/config"
)

func defaults() *config.ServerConfig {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	return cfg
}

func TestRenderEnvExample(t *testing.T) {
	t.Parallel()

	out := renderEnvExample(defaults())

	assert.True(t, strings.HasPrefix(out, envFileHeader))
	assert.Contains(t, out, "## Basic\n")
	assert.Contains(t, out, "BLOG_PORT=\"8080\"\n")
	assert.Contains(t, out, "BLOG_CONTENT_DIR=\"./content/posts\"\n")
	assert.Contains(t, out, "# BLOG_LOG_OUTPUTS=/dev/stderr\n")
	assert.Contains(t, out, "# BLOG_CACHE_CONTROL_MAX_AGE=5m0s\n")
	assert.NotContains(t, out, "## Build")
	assert.NotContains(t, out, "## Instance")
}

func TestRenderYAMLExample(t *testing.T) {
	t.Parallel()

	out, err := renderYAMLExample(defaults())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, yamlFileHeader))
	assert.Contains(t, out, "\nbasic:\n")
	assert.Contains(t, out, "  # port: ")
	assert.Contains(t, out, "  # cacheControlMaxAge: 5m0s\n")
	assert.NotContains(t, out, "startingTime")
}
