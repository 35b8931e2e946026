package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_MatchesOriginal(t *testing.T) {
	hash, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPassword(hash, "pw123"))
	assert.False(t, CheckPassword(hash, "wrongpw"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt must embed a fresh salt per hash")
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "pw123"))
}
