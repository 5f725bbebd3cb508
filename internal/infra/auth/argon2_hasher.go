// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"linkmark/config"
	"linkmark/internal/domain/service"
	"linkmark/internal/errors"
)

// Default argon2id cost parameters, used when the config leaves them unset.
const (
	defaultArgon2Memory      uint32 = 64 * 1024
	defaultArgon2Iterations  uint32 = 3
	defaultArgon2Parallelism uint8  = 2

	argon2SaltLength uint32 = 16
	argon2KeyLength  uint32 = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id. Hashes are encoded in the PHC string format, so the salt and
// cost parameters travel with the hash and verification is self-contained.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &argon2Hasher{
		memory:      defaultArgon2Memory,
		iterations:  defaultArgon2Iterations,
		parallelism: defaultArgon2Parallelism,
	}

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2Memory > 0 {
			hasher.memory = cfg.Auth.Argon2Memory
		}
		if cfg.Auth.Argon2Iterations > 0 {
			hasher.iterations = cfg.Auth.Argon2Iterations
		}
		if cfg.Auth.Argon2Parallelism > 0 {
			hasher.parallelism = cfg.Auth.Argon2Parallelism
		}
	}

	return hasher
}

// Hash generates a salted argon2id hash from a plaintext password.
// The output looks like:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-hash>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, argon2KeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with an encoded argon2id hash.
// The hash is recomputed with the parameters embedded in the encoded string
// and compared in constant time. Unparseable hashes return false.
func (h *argon2Hasher) Check(password, hash string) bool {
	memory, iterations, parallelism, salt, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeArgon2Hash(encoded string) (memory, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse argon2 version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse argon2 parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode key")
	}

	return memory, iterations, parallelism, salt, key, nil
}
