// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	cleanupMu     sync.Mutex
	lastCleanupAt time.Time
)

// DoCleanup removes expired limiters at most once per CleanupInterval.
//
// It is called after every limited request, so the first call only starts the clock.
func DoCleanup() {
	now := timeNow()

	cleanupMu.Lock()

	if lastCleanupAt.IsZero() {
		lastCleanupAt = now
		cleanupMu.Unlock()

		return
	}

	if now.Sub(lastCleanupAt) < CleanupInterval {
		cleanupMu.Unlock()

		return
	}

	lastCleanupAt = now
	cleanupMu.Unlock()

	removed := cleanupExpiredLimiters(now)

	log.Debug().
		Time("start", now).
		Dur("dur", time.Since(now)).
		Int("removed", removed).
		Msg("Limiter cleanup")
}

// cleanupExpiredLimiters drops limiters idle for longer than LimiterExpiryDuration.
func cleanupExpiredLimiters(now time.Time) int {
	removed := 0

	limiters.Range(func(key, value any) bool {
		lw, ok := value.(*limiterWrapper)
		if !ok {
			limiters.Delete(key)

			return true
		}

		lw.mu.Lock()
		expired := now.Sub(lw.lastAccess) > LimiterExpiryDuration
		lw.mu.Unlock()

		if expired {
			limiters.Delete(key)

			removed++
		}

		return true
	})

	return removed
}
