// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes example configuration files for the blog from the
// configuration defaults.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/core/audit"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/config.yaml.example"
	dirPerm        = 0o755
	filePerm       = 0o644

	envFileHeader = `# Blog configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# Blog configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
)

// uncommentedEnvVars are written active rather than commented out.
var uncommentedEnvVars = map[string]bool{
	"BLOG_HOST":        true,
	"BLOG_PORT":        true,
	"BLOG_CONTENT_DIR": true,
}

func main() {
	audit.SetDefaultLogger()

	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	yamlExample, err := renderYAMLExample(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	for path, data := range map[string]string{
		envOutputFile:  renderEnvExample(cfg),
		yamlOutputFile: yamlExample,
	} {
		if err := writeFile(path, data); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
		}

		log.Info().Str("path", path).Msg("Successfully generated example file")
	}
}

func writeFile(path, data string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(data), filePerm)
}

// renderEnvExample lists every env-configurable field of cfg, grouped by section.
func renderEnvExample(cfg *config.ServerConfig) string {
	var sb strings.Builder
	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	for i := range typ.NumField() {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" {
			continue
		}

		var section strings.Builder

		innerTyp := structValue.Type()
		for j := range innerTyp.NumField() {
			field := innerTyp.Field(j)
			value := structValue.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			envVarName := strings.Split(tag, ",")[0]

			switch {
			case uncommentedEnvVars[envVarName]:
				fmt.Fprintf(&section, "%s=\"%v\"\n", envVarName, value.Interface())
			case value.Kind() == reflect.Slice:
				fmt.Fprintf(&section, "# %s=%s\n", envVarName, joinSlice(value))
			case value.Kind() == reflect.String && value.Len() == 0:
				fmt.Fprintf(&section, "# %s=\n", envVarName)
			default:
				fmt.Fprintf(&section, "# %s=%v\n", envVarName, value.Interface())
			}
		}

		if section.Len() == 0 {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n%s\n", structField.Name, section.String())
	}

	return sb.String()
}

func joinSlice(value reflect.Value) string {
	parts := make([]string, value.Len())
	for i := range value.Len() {
		parts[i] = fmt.Sprint(value.Index(i).Interface())
	}

	return strings.Join(parts, ",")
}

// renderYAMLExample marshals cfg and comments out every value, keeping the
// section keys so users only uncomment what they change.
func renderYAMLExample(cfg *config.ServerConfig) (string, error) {
	var yamlContent strings.Builder

	encoderOpts := []yaml.EncodeOption{
		config.GetDurationEncoderOption(),
		yaml.Indent(2),
	}
	if err := yaml.NewEncoder(&yamlContent, encoderOpts...).Encode(cfg); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "basic:") are treated as section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}
