// Package service provides token issuing/verification and password hashing
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/promco/backend/internal/models"
)

// DefaultAccessTokenExpiry is the lifetime of an access token when none is configured
const DefaultAccessTokenExpiry = 24 * time.Hour

var (
	// ErrMissingSecret is returned when a token generator is built without a signing secret
	ErrMissingSecret = errors.New("jwt signing secret is required")
	// ErrInvalidToken wraps every token validation failure
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload of an access token.
// UserID is typed so it survives the JSON round trip as an integer.
type Claims struct {
	UserID int         `json:"userId"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret            []byte
	accessTokenExpiry time.Duration
	now               func() time.Time
}

// NewTokenGenerator creates a new token generator.
// An empty secret is a fatal configuration error: no unsigned tokens are ever issued.
func NewTokenGenerator(secret string, accessExpiry time.Duration) (*TokenGenerator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if accessExpiry <= 0 {
		accessExpiry = DefaultAccessTokenExpiry
	}

	return &TokenGenerator{
		secret:            []byte(secret),
		accessTokenExpiry: accessExpiry,
		now:               time.Now,
	}, nil
}

// Expiry returns the configured access token lifetime
func (tg *TokenGenerator) Expiry() time.Duration {
	return tg.accessTokenExpiry
}

// Issue creates a signed access token carrying userID and role
func (tg *TokenGenerator) Issue(userID int, role models.Role) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("invalid user id: %d", userID)
	}
	if !role.Valid() {
		return "", fmt.Errorf("invalid role: %q", role)
	}

	now := tg.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tg.accessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tg.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Validate checks the token signature, algorithm and expiry and returns its claims.
// Every failure wraps ErrInvalidToken; the underlying jwt error is kept for diagnostics.
func (tg *TokenGenerator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return tg.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(tg.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// A role outside the closed set never grants anything
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id not found in token", ErrInvalidToken)
	}

	return claims, nil
}

// FailureReason classifies a validation error for internal logging only
func FailureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "unverifiable"
	case errors.Is(err, jwt.ErrTokenUsedBeforeIssued), errors.Is(err, jwt.ErrTokenNotValidYet):
		return "not_yet_valid"
	default:
		return "invalid_claims"
	}
}
