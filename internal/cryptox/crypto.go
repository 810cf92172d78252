// Package cryptox implements credential hashing for CredVault.
//
// Passwords are never stored or compared in plaintext. At registration a
// random salt is drawn and the password is run through Argon2id; the stored
// verifier is a SHA-256 digest of the derived key. At login the same
// derivation is repeated and compared in constant time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/vitahealth/credvault/internal/common"
)

const saltSize = 32

// Argon2id parameters: one pass over 64 MiB with four lanes.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// NewSalt returns a fresh random salt for credential hashing.
func NewSalt() []byte {
	return common.GenerateRandByteArray(saltSize)
}

// DeriveKey stretches a password with the given salt using Argon2id.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// MakeVerifier computes the value stored alongside an account and checked
// at login. Storing a digest of the derived key rather than the key itself
// keeps the key usable for other purposes without ever persisting it.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword derives the stored verifier for a password and salt.
func HashPassword(password, salt []byte) []byte {
	return MakeVerifier(DeriveKey(password, salt))
}

// VerifyPassword reports whether password matches the stored salt/verifier
// pair. The comparison is constant-time.
func VerifyPassword(password, salt, verifier []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
