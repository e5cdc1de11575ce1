package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
	apperrors "github.com/mottuflow/fleetflow/internal/errors"
)

// tokenClaims is the wire representation of the access token payload.
type tokenClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// jwtCodec implements TokenCodec with HS256 signatures. Signing key, issuer,
// audience and expiration are immutable for the process lifetime.
type jwtCodec struct {
	signingKey []byte
	issuer     string
	audience   string
	expiration time.Duration
}

// NewJWTCodec creates a TokenCodec that signs with HS256.
func NewJWTCodec(signingKey []byte, issuer, audience string, expiration time.Duration) TokenCodec {
	return &jwtCodec{
		signingKey: signingKey,
		issuer:     issuer,
		audience:   audience,
		expiration: expiration,
	}
}

// Encode mints a signed token carrying the staff identity. The signature
// covers issuer, audience, iat and exp.
func (c *jwtCodec) Encode(claims *authDomain.Claims) (string, time.Duration, error) {
	if claims == nil {
		return "", 0, apperrors.New("claims must not be nil")
	}

	now := time.Now()
	payload := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   claims.StaffID.String(),
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiration)),
			ID:        uuid.Must(uuid.NewV7()).String(),
		},
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", 0, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, c.expiration, nil
}

// Decode verifies the token and returns its claims. Signature, issuer,
// audience and expiry are all checked with zero leeway; every failure maps
// to ErrInvalidToken.
func (c *jwtCodec) Decode(tokenString string) (*authDomain.Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return c.signingKey, nil
		},
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	payload, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	staffID, err := uuid.Parse(payload.Subject)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.Claims{
		StaffID: staffID,
		Name:    payload.Name,
		Email:   payload.Email,
		Role:    payload.Role,
	}, nil
}
