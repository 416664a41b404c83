// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFilePermissions = 0o644

// logLevels maps accepted Log.Level values to zerolog levels.
var logLevels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// setupAudit points the global logger at the configured outputs.
//
// Development mode always logs at debug level.
func (cfg *ServerConfig) setupAudit() {
	if cfg.Development.InDevelopment {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if level, ok := logLevels[cfg.Log.Level]; ok {
		zerolog.SetGlobalLevel(level)
	}

	writers := []io.Writer{}

	for _, output := range cfg.Log.Outputs {
		var w io.Writer

		switch output {
		case "/dev/stdout":
			w = cfg.logWriter(os.Stdout)
		case "/dev/stderr":
			w = cfg.logWriter(os.Stderr)
		default:
			file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
			if err != nil {
				// Skip this output; the logger is not usable yet.
				fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", output, err)

				continue
			}

			w = cfg.logWriter(file)
		}

		writers = append(writers, w)
	}

	if len(writers) == 0 {
		writers = append(writers, ConsoleWriter(os.Stderr))
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}

// logWriter returns f itself for JSON logs and a console writer otherwise.
func (cfg *ServerConfig) logWriter(f *os.File) io.Writer {
	if cfg.Log.Format == "json" {
		return f
	}

	return ConsoleWriter(f)
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter returns a writer for zerolog that has NoColor:isTerminal(f).
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isTerminal(f)

	w := zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.DateTime}

	if !noColor {
		w.FormatPrepare = func(m map[string]any) error {
			// pretty print request logs
			if sys, ok := m["sys"]; ok && sys == "http" {
				m["message"] = fmt.Sprintf("%v %-5v %v (%v)", m["status_code"], m["method"], m["url"], m["dur"])
				delete(m, "sys")
				delete(m, "method")
				delete(m, "status_code")
				delete(m, "url")
				delete(m, "dur")
				delete(m, "request_id")
			}

			return nil
		}
	}

	return w
}
