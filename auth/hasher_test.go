package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasher_Deterministic(t *testing.T) {
	req := require.New(t)
	hasher := NewHasher("test-secret")

	first := hasher.HashEmail("alice@example.com")
	second := hasher.HashEmail("alice@example.com")
	req.Equal(first, second)
	req.Len(first, 64)
}

func TestHasher_DistinctInputs(t *testing.T) {
	req := require.New(t)
	hasher := NewHasher("test-secret")

	req.NotEqual(hasher.HashEmail("alice@example.com"), hasher.HashEmail("bob@example.com"))
}

func TestHasher_PurposeSeparation(t *testing.T) {
	req := require.New(t)
	hasher := NewHasher("test-secret")

	// The same raw string must land in different bucket spaces
	// depending on whether it is hashed as an email or as an IP.
	req.NotEqual(hasher.HashEmail("192.168.1.1"), hasher.HashIP("192.168.1.1"))
}

func TestHasher_KeyDependence(t *testing.T) {
	req := require.New(t)

	req.NotEqual(
		NewHasher("secret-one").HashEmail("alice@example.com"),
		NewHasher("secret-two").HashEmail("alice@example.com"),
	)
}

func TestHasher_EmptyInput(t *testing.T) {
	req := require.New(t)
	hasher := NewHasher("test-secret")

	// Degenerate but valid: still deterministic, still purpose-bound.
	req.Equal(hasher.HashEmail(""), hasher.HashEmail(""))
	req.NotEqual(hasher.HashEmail(""), hasher.HashIP(""))
}
