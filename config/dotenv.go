// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// useDotEnv loads variables from a .env file in the working directory, or
// failing that, next to the binary. Variables already set in the environment win.
//
// Missing or unreadable files are logged and skipped.
func useDotEnv() error {
	candidates := make([]string, 0, 2)

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, ".env"))
	} else {
		log.Warn().Err(err).Msg("Could not get current working directory")
	}

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ".env"))
	}

	for _, envPath := range candidates {
		data, err := os.ReadFile(envPath) // #nosec G304 -- fixed file name in known directories
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			log.Warn().Err(err).Str("path", envPath).Msg("Could not read .env file")

			continue
		}

		applyDotEnv(envPath, data)

		return nil
	}

	log.Debug().Msg("No .env file found, skipping")

	return nil
}

// applyDotEnv sets KEY=VALUE pairs from data that are not already in the environment.
func applyDotEnv(envPath string, data []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			log.Warn().
				Str("path", envPath).
				Int("line", lineNumber).
				Msg("Invalid format in .env file")

			continue
		}

		key, value = strings.TrimSpace(key), unquote(strings.TrimSpace(value))

		if _, set := os.LookupEnv(key); set {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Could not set environment variable")
		}
	}

	log.Info().Str("path", envPath).Msg("Loaded configuration from .env file")
}

func unquote(value string) string {
	const minQuotedLength = 2

	if len(value) >= minQuotedLength && value[0] == value[len(value)-1] && (value[0] == '"' || value[0] == '\'') {
		return value[1 : len(value)-1]
	}

	return value
}
