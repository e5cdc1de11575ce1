// Package service provides technical services for authentication operations:
// password hashing with Argon2id and stateless access token encoding.
package service

import (
	"time"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
)

// SecretService defines operations for password generation and verification.
// Implementations must use industry-standard hashing (Argon2id) and
// constant-time comparison.
type SecretService interface {
	// GeneratePassword creates a new cryptographically secure random password.
	// Returns both the plain text (shown once to the operator) and the hash
	// to be stored.
	GeneratePassword() (plainPassword string, hashedPassword string, err error)

	// HashSecret hashes a plain text secret.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret compares a plain text secret against a hash.
	// Returns true on match. Constant-time to prevent timing attacks.
	CompareSecret(plainSecret string, hashedSecret string) bool
}

// TokenCodec encodes and decodes signed access tokens. Both directions are
// pure functions of the process-wide signing configuration.
type TokenCodec interface {
	// Encode mints a signed token for the given claims and returns it with
	// the validity window.
	Encode(claims *authDomain.Claims) (token string, expiresIn time.Duration, err error)

	// Decode verifies signature, issuer, audience, and expiry with zero
	// leeway. Any failure returns ErrInvalidToken.
	Decode(token string) (*authDomain.Claims, error)
}
