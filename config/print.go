// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

func (cfg *ServerConfig) print() {
	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("cacheid", cfg.Instance.FileServerCacheID).
		Msg("Starting blog")

	configYAML, err := yaml.MarshalWithOptions(*cfg, GetDurationEncoderOption())
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Info().Msg("Application configuration:")
	fmt.Fprintln(os.Stderr, string(configYAML))
}
