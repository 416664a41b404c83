// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Make returns a short URL-safe ID.
//
// IDs come from UUIDv7, so they sort roughly by creation time. Make falls
// back to a random UUIDv4 if the clock sequence cannot be read.
func Make() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Parse decodes an ID returned by Make back into its UUID.
func Parse(s string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.FromBytes(raw)
}
