// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

// parseCommandLineArgs defines and parses flags, returning the value of the "config" flag.
func parseCommandLineArgs() string {
	if flag.Lookup("config") == nil {
		flag.String("config", "./config.yaml", "Path to a blog configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	return flag.Lookup("config").Value.String()
}
