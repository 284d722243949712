package services

import (
	"strings"
	"testing"
)

func TestBcryptHasher(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("s3creta")
	assertNoError(t, err)
	if hash == "s3creta" || !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash %q", hash)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{"match", hash, "s3creta", true},
		{"wrong password", hash, "otra", false},
		{"empty password", hash, "", false},
		{"malformed hash", "not-a-hash", "s3creta", false},
		{"empty hash", "", "s3creta", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasher.Compare(tt.hash, tt.password)
			assertNoError(t, err)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	hasher := NewBcryptHasher(99).(*bcryptHasher)
	if hasher.cost != 10 {
		t.Errorf("expected default cost, got %d", hasher.cost)
	}
}
