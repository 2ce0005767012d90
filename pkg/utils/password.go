package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix  = "argon2"
	argon2SaltLen = 16
)

var ErrInvalidHash = errors.New("invalid password hash format")

// PasswordHasher hashes passwords with argon2id.
// Encoded form: argon2$argon2id$v=19$m=<KiB>,t=<time>,p=<threads>$<salt>$<key>
type PasswordHasher struct {
	params Argon2Config
}

func NewPasswordHasher(params Argon2Config) *PasswordHasher {
	if params.Time == 0 {
		params.Time = 2
	}
	if params.Memory == 0 {
		params.Memory = 100 * 1024
	}
	if params.Threads == 0 {
		params.Threads = 8
	}
	if params.KeyLen == 0 {
		params.KeyLen = 32
	}
	return &PasswordHasher{params: params}
}

// HashPassword returns the encoded argon2id hash of password using a random salt
func (h *PasswordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("%s$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// CheckPasswordHash reports whether password matches the encoded hash.
// Parameters are read from the hash so old hashes keep verifying after a config change.
func (h *PasswordHasher) CheckPasswordHash(password, encoded string) bool {
	params, salt, key, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false
	}

	other := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1
}

func decodeArgon2Hash(encoded string) (Argon2Config, []byte, []byte, error) {
	var params Argon2Config

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != argon2Prefix || parts[1] != "argon2id" {
		return params, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d: %w", version, ErrInvalidHash)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, ErrInvalidHash
	}
	// argon2.IDKey panics on zero passes or lanes
	if params.Time == 0 || params.Threads == 0 {
		return params, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrInvalidHash
	}

	return params, salt, key, nil
}
