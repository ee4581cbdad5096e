// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewProjectID(t *testing.T) {
	id, err := NewProjectID()
	if err != nil {
		t.Fatalf("NewProjectID failed: %v", err)
	}

	if len(id) != ProjectIDLength {
		t.Errorf("Expected length %d, got %d (%q)", ProjectIDLength, len(id), id)
	}

	for _, c := range id {
		if !strings.ContainsRune(base62Chars, c) {
			t.Errorf("ID %q contains non-base62 character %q", id, c)
		}
	}
}

func TestNewProjectID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewProjectID()
		if err != nil {
			t.Fatalf("NewProjectID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewVoteID(t *testing.T) {
	id, err := NewVoteID()
	if err != nil {
		t.Fatalf("NewVoteID failed: %v", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("Vote ID %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("Expected UUID v4, got v%d", parsed.Version())
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty", []byte{}, ""},
		{"zero", []byte{0}, "0"},
		{"last digit", []byte{9}, "9"},
		{"first lowercase", []byte{10}, "a"},
		{"first uppercase", []byte{36}, "A"},
		{"wraps", []byte{62}, "0"},
		{"max byte", []byte{255}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base62Encode(tt.input); got != tt.expected {
				t.Errorf("base62Encode(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
