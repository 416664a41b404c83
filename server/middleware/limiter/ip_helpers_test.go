// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net/http"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		request    *http.Request
		expectedIP string
		ok         bool
	}{
		{
			name: "X-Real-IP from a trusted proxy",
			request: &http.Request{
				RemoteAddr: "127.0.0.1:12345",
				Header:     http.Header{"X-Real-Ip": {"2.2.2.2"}},
			},
			expectedIP: "2.2.2.2",
			ok:         true,
		},
		{
			name: "Last X-Forwarded-For entry from a trusted proxy",
			request: &http.Request{
				RemoteAddr: "192.168.1.1:12345",
				Header:     http.Header{"X-Forwarded-For": {"3.3.3.3, 4.4.4.4"}},
			},
			expectedIP: "4.4.4.4",
			ok:         true,
		},
		{
			name: "Proxy headers ignored from a public address",
			request: &http.Request{
				RemoteAddr: "1.1.1.1:12345",
				Header:     http.Header{"X-Real-Ip": {"2.2.2.2"}},
			},
			expectedIP: "1.1.1.1",
			ok:         true,
		},
		{
			name: "Malformed proxy header falls back to RemoteAddr",
			request: &http.Request{
				RemoteAddr: "10.0.0.1:80",
				Header:     http.Header{"X-Real-Ip": {"nope"}},
			},
			expectedIP: "10.0.0.1",
			ok:         true,
		},
		{
			name:       "IPv4-mapped IPv6 is unmapped",
			request:    &http.Request{RemoteAddr: "[::ffff:8.8.8.8]:443"},
			expectedIP: "8.8.8.8",
			ok:         true,
		},
		{
			name:    "Unparsable RemoteAddr",
			request: &http.Request{RemoteAddr: "pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			addr, ok := clientAddr(tt.request)

			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.expectedIP, addr.String())
			}
		})
	}
}

func TestAddrMatchesList(t *testing.T) {
	t.Parallel()

	list := []string{"10.0.0.0/8", "203.0.113.7", "2001:db8::/32", "garbage"}

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"203.0.113.7", true},
		{"203.0.113.8", false},
		{"2001:db8::1", true},
		{"2001:db9::1", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, addrMatchesList(netip.MustParseAddr(tt.ip), list), tt.ip)
	}
}

func TestNetwork(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "198.51.100.0/24", network(netip.MustParseAddr("198.51.100.23"), 24, 48).String())
	assert.Equal(t, "2001:db8:abcd::/48", network(netip.MustParseAddr("2001:db8:abcd:12::1"), 24, 48).String())
	assert.Equal(t, "198.51.100.23/32", network(netip.MustParseAddr("198.51.100.23"), 99, 48).String())
}
