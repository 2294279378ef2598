package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidKeyHash      = errors.New("invalid encoded key hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Argon2id parameters for API key hashing. Keys are long and random so the
// work factor can stay lower than interactive password hashing would need.
const (
	keyHashMemory      = 32 * 1024
	keyHashIterations  = 2
	keyHashParallelism = 2
	keyHashSaltLength  = 16
	keyHashKeyLength   = 32
)

// HashAPIKey hashes an API key with Argon2id and returns it in PHC string
// format, suitable for the API_KEY_HASH configuration value.
func HashAPIKey(key string) (string, error) {
	salt, err := OSSource().Fill(keyHashSaltLength)
	if err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(key), salt, keyHashIterations, keyHashMemory, keyHashParallelism, keyHashKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		keyHashMemory,
		keyHashIterations,
		keyHashParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyAPIKey checks whether key matches the given PHC-encoded Argon2id
// hash, using a constant-time comparison.
func VerifyAPIKey(key, encodedHash string) (bool, error) {
	memory, iterations, parallelism, salt, hash, err := decodeKeyHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(key), salt, iterations, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

// decodeKeyHash parses a PHC-formatted Argon2id hash string.
func decodeKeyHash(encodedHash string) (memory, iterations uint32, parallelism uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidKeyHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidKeyHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidKeyHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidKeyHash
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidKeyHash
	}

	return memory, iterations, parallelism, salt, hash, nil
}
