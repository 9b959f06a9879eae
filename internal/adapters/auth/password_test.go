package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(10)
	password := "my-secret-password"

	hash, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)

	err = h.Compare(hash, password)
	require.NoError(t, err)
}

func TestBcryptHasher_Compare_wrong_password(t *testing.T) {
	h := NewBcryptHasher(10)
	hash, err := h.Hash("correct")
	require.NoError(t, err)

	err = h.Compare(hash, "wrong")
	assert.Error(t, err)
}

func TestBcryptHasher_Hash_is_salted(t *testing.T) {
	h := NewBcryptHasher(10)
	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "bcrypt hashes should differ due to per-hash salt")
}
