// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// ProjectIDLength is the length of identifiers returned by NewProjectID.
const ProjectIDLength = 10

const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewProjectID returns a short URL-safe identifier for a project.
// Projects appear in URLs, so these stay compact (62^10 ≈ 8.4e17 ids).
func NewProjectID() (string, error) {
	b := make([]byte, ProjectIDLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate project ID: %w", err)
	}
	return base62Encode(b), nil
}

// NewVoteID returns a random (v4) UUID string.
func NewVoteID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate vote ID: %w", err)
	}
	return id.String(), nil
}

// base62Encode maps each byte onto the base62 alphabet.
// The modulo bias (256 % 62 = 8) is acceptable for identifiers.
func base62Encode(data []byte) string {
	result := make([]byte, len(data))
	for i, b := range data {
		result[i] = base62Chars[int(b)%len(base62Chars)]
	}
	return string(result)
}
