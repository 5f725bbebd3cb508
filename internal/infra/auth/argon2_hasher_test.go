package auth

import (
	"strings"
	"testing"

	"linkmark/config"

	"github.com/stretchr/testify/assert"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	password := "super-secret-1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	// Correct password matches
	assert.True(t, hasher.Check(password, hash))

	// Wrong password does not
	assert.False(t, hasher.Check("super-secret-2", hash))

	// Empty password does not
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2Hasher_SaltIsPerCall(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	password := "same-password"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// A fresh random salt means identical passwords never share a hash,
	// yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestArgon2Hasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	assert.False(t, hasher.Check("whatever", ""))
	assert.False(t, hasher.Check("whatever", "not-a-hash"))
	assert.False(t, hasher.Check("whatever", "$argon2id$v=19$m=bad$x$y"))
	// bcrypt-style hash is not argon2id
	assert.False(t, hasher.Check("whatever", "$2a$10$N9qo8uLOickgx2ZMRZoMye"))
}

func TestArgon2Hasher_ConfiguredParametersAreEmbedded(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Argon2Memory:      32 * 1024,
			Argon2Iterations:  2,
			Argon2Parallelism: 1,
		},
	}

	hasher := NewArgon2Hasher(cfg)

	hash, err := hasher.Hash("configured")
	assert.NoError(t, err)
	assert.Contains(t, hash, "m=32768,t=2,p=1")
	assert.True(t, hasher.Check("configured", hash))
}
