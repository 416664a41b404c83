// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	LimiterExpiryDuration = time.Hour       // How long to keep idle limiters in memory.
	CleanupInterval       = 5 * time.Minute // Minimum interval between cleanup runs.
)

var (
	limiters sync.Map   // network string -> *limiterWrapper
	timeNow  = time.Now // Wrapper for time.Now, which allows us to mock it in tests.
)

// limiterWrapper holds a rate limiter and the last time it was used.
type limiterWrapper struct {
	limiter    *rate.Limiter
	network    string
	lastAccess time.Time
	mu         sync.Mutex
}

// getOrCreateLimiter returns the limiter for network, creating it with the
// given rate and burst if it does not exist yet.
func getOrCreateLimiter(network string, rateLim float64, burst int) *limiterWrapper {
	if value, ok := limiters.Load(network); ok {
		if lw, ok := value.(*limiterWrapper); ok {
			return lw
		}
	}

	lw := &limiterWrapper{
		limiter:    rate.NewLimiter(rate.Limit(rateLim), burst),
		network:    network,
		lastAccess: timeNow(),
	}

	// Another request from the same network may have raced us here.
	actual, _ := limiters.LoadOrStore(network, lw)

	return actual.(*limiterWrapper)
}

// allow consumes one token, reporting whether the request may proceed.
func (lw *limiterWrapper) allow() bool {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	now := timeNow()
	lw.lastAccess = now

	if lw.limiter.AllowN(now, 1) {
		return true
	}

	log.Warn().
		Str("network", lw.network).
		Msg("Rate limit exceeded")

	return false
}

// state returns the bucket size and the tokens currently available.
func (lw *limiterWrapper) state() (burst int, tokens float64, limit rate.Limit) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	return lw.limiter.Burst(), lw.limiter.TokensAt(timeNow()), lw.limiter.Limit()
}

// Reset drops every limiter.
func Reset() {
	limiters.Clear()
}

// count returns the number of tracked networks.
func count() int {
	n := 0

	limiters.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}
