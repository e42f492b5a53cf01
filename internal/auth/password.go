package auth

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// fallbackDummyHash is a well-formed Argon2id hash with the default memory
// and iteration cost. It matches no password.
const fallbackDummyHash = "$argon2id$v=19$m=65536,t=1,p=2$zI7+6uH4oLGeONwz25hv3g$uqNJJ5O5/MiPNsONj9WiE8sQctUMxfbvU41UZ2fxtgU"

var (
	dummyHash     string    //nolint:gochecknoglobals
	dummyHashOnce sync.Once //nolint:gochecknoglobals
)

// HashPassword hashes a plaintext password using Argon2id with the default
// parameters of the argon2id package.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashPassword, err)
	}

	return hash, nil
}

// VerifyPassword reports whether password matches hash. Argon2id and bcrypt
// hashes are understood; anything else never matches.
func VerifyPassword(password, hash string) bool {
	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		log.Error().Str("error_class", "malformed password hash").Msg("failed to verify password")
		return false
	}

	return match
}

// NeedsRehash reports whether hash should be replaced by a fresh
// HashPassword result: bcrypt hashes and Argon2id hashes made with other
// parameters than the current defaults.
func NeedsRehash(hash string) bool {
	if isBcrypt(hash) {
		return true
	}

	params, _, _, err := argon2id.DecodeHash(hash)
	if err != nil {
		return true
	}

	return *params != *argon2id.DefaultParams
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

// dummy returns a valid hash that is verified when the user does not exist,
// so unknown usernames cost the same as wrong passwords.
func dummy() string {
	dummyHashOnce.Do(func() {
		dummyHash = newDummyHash(HashPassword)
	})

	return dummyHash
}

// newDummyHash hashes a throwaway password with create and falls back to
// fallbackDummyHash when hashing fails.
func newDummyHash(create func(string) (string, error)) string {
	hash, err := create("not a password")
	if err != nil {
		log.Error().Err(err).Msg("failed to create dummy password hash")

		return fallbackDummyHash
	}

	return hash
}
