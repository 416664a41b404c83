// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/jackfan/blog/config"
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit"
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
	HeaderRateLimitReset     string = "RateLimit-Reset"
)

// excludedPaths won't have traffic filtered by the limiter middleware.
var excludedPaths = []string{
	"/css/",
	"/img/",
	"/robots.txt",
}

func isExcludedPath(path string) bool {
	for _, prefix := range excludedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// Evaluate is the entrypoint to the limiter middleware.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	defer DoCleanup()

	cfg := config.Global.Limiter

	if isExcludedPath(r.URL.Path) {
		next.ServeHTTP(w, r)

		return
	}

	addr, ok := clientAddr(r)
	if !ok {
		log.Error().
			Str("remote_addr", r.RemoteAddr).
			Msg("Could not determine client IP")
		http.Error(w, "Bad Request", http.StatusBadRequest)

		return
	}

	if addrMatchesList(addr, cfg.PassIPs) {
		next.ServeHTTP(w, r)

		return
	}

	netw := network(addr, cfg.IPv4Prefix, cfg.IPv6Prefix)
	lw := getOrCreateLimiter(netw.String(), cfg.Rate, cfg.Burst)

	if !lw.allow() {
		log.Warn().
			Str("ip", addr.String()).
			Str("network", netw.String()).
			Msg("Request blocked, exceeded rate limit")
		addRateLimitHeaders(w, lw)
		w.Header().Set("Cache-Control", "no-store")
		http.Error(w, "Too many requests. Please slow down.", http.StatusTooManyRequests)

		return
	}

	addRateLimitHeaders(w, lw)
	next.ServeHTTP(w, r)
}

// addRateLimitHeaders adds rate limiting information to the response headers.
func addRateLimitHeaders(w http.ResponseWriter, lw *limiterWrapper) {
	burst, tokens, limit := lw.state()

	remaining := max(0, int(math.Min(float64(burst), tokens)))

	// Seconds until the bucket is full again.
	var resetTime int64

	if tokens < float64(burst) && limit > 0 {
		resetTime = int64(math.Ceil((float64(burst) - tokens) / float64(limit)))
	}

	resetStr := strconv.FormatInt(resetTime, 10)

	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(burst))
	w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(HeaderRateLimitReset, resetStr)

	if remaining == 0 {
		w.Header().Set("Retry-After", resetStr)
	}
}
