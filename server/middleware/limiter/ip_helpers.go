// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// clientAddr extracts the client's IP address from an HTTP request with proxy awareness.
//
// Proxy headers (X-Real-IP, X-Forwarded-For) are only trusted when the connection
// comes from a private or loopback address, i.e. a reverse proxy in front of us.
func clientAddr(r *http.Request) (netip.Addr, bool) {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	remote, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}

	remote = remote.Unmap()

	if !remote.IsPrivate() && !remote.IsLoopback() {
		return remote, true
	}

	// X-Real-IP takes precedence as it's typically the originating client IP
	// when set by a trusted proxy.
	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap(), true
	}

	// Otherwise the last X-Forwarded-For entry, which our proxy appended.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")

		if forwarded, err := netip.ParseAddr(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return forwarded.Unmap(), true
		}
	}

	return remote, true
}

// addrMatchesList reports whether addr equals or falls within any entry of
// list, each an IP address or a CIDR.
func addrMatchesList(addr netip.Addr, list []string) bool {
	for _, entry := range list {
		if strings.Contains(entry, "/") {
			if prefix, err := netip.ParsePrefix(entry); err == nil && prefix.Contains(addr) {
				return true
			}

			continue
		}

		if ip, err := netip.ParseAddr(entry); err == nil && ip.Unmap() == addr {
			return true
		}
	}

	return false
}

// network returns the network addr is grouped into for rate limiting.
func network(addr netip.Addr, ipv4Prefix, ipv6Prefix int) netip.Prefix {
	bits := ipv6Prefix
	if addr.Is4() {
		bits = ipv4Prefix
	}

	prefix, err := addr.Prefix(bits)
	if err != nil {
		// Out-of-range prefixes are rejected by config validation; fall back
		// to limiting the single address.
		return netip.PrefixFrom(addr, addr.BitLen())
	}

	return prefix
}
