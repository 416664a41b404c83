// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"runtime/debug"
	"strings"
)

// BuildVersion is the latest tagged release of the blog.
const BuildVersion string = "v1.2.0"

// shortRevisionLength is how much of the commit hash Revision shows.
const shortRevisionLength = 8

type buildInfo struct {
	VcsRevision string
	VcsTime     string
	VcsModified bool
}

// Revision returns "<commit date>-<short hash>[+dirty]", or "unknown" outside a VCS build.
func (b *buildInfo) Revision() string {
	if b.VcsRevision == "" {
		return "unknown"
	}

	revision := b.VcsRevision
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}

	s := strings.Split(b.VcsTime, "T")[0] + "-" + revision
	if b.VcsModified {
		s += "+dirty"
	}

	return s
}

func (b *buildInfo) load() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			b.VcsRevision = setting.Value
		case "vcs.time":
			b.VcsTime = setting.Value
		case "vcs.modified":
			b.VcsModified = setting.Value == "true"
		}
	}
}
