package auth

import (
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("s3cret-Passw0rd!")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-Passw0rd!", hash)

	assert.True(t, hasher.Check("s3cret-Passw0rd!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// bcrypt salts every hash, so equal inputs yield different hashes.
	assert.NotEqual(t, first, second)
}
