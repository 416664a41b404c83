// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter is a middleware that rate limits HTTP requests per client network.

Clients are grouped by IP network (Limiter.IPv4Prefix / Limiter.IPv6Prefix) and
each network shares a token bucket refilled at Limiter.Rate tokens per second up
to Limiter.Burst. Addresses in Limiter.PassIPs and requests for static files
skip the limiter. Buckets unused for LimiterExpiryDuration are dropped lazily.
*/
package limiter
