// Package middleware implements the authorization gate that protects API routes
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/promco/backend/internal/auth/service"
	"github.com/promco/backend/internal/middlewares"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// Client-facing messages. They never say why a token failed or whether the resource exists.
const (
	MsgNoToken           = "Access denied. No token provided."
	MsgInvalidToken      = "Invalid token."
	MsgInsufficientPerms = "Access denied. Insufficient permissions."
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenValidator validates a raw access token and returns its claims
type TokenValidator interface {
	Validate(token string) (*service.Claims, error)
}

// Gate authenticates bearer tokens and enforces role allow-lists.
// It decides from the signed claims alone and performs no I/O.
type Gate struct {
	tokens TokenValidator
	logger *zap.Logger
}

// NewGate creates a new authorization gate
func NewGate(tokens TokenValidator, logger *zap.Logger) *Gate {
	return &Gate{
		tokens: tokens,
		logger: logger,
	}
}

// Require returns middleware admitting requests with a valid token whose role is in roles.
// With no roles any valid token is admitted.
func (g *Gate) Require(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := middlewares.GetRequestID(r.Context())

			token := bearerToken(r)
			if token == "" {
				g.logger.Debug("no bearer token", zap.String("request_id", requestID), zap.String("path", r.URL.Path))
				middlewares.WriteError(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			claims, err := g.tokens.Validate(token)
			if err != nil {
				g.logger.Info("token rejected",
					zap.String("request_id", requestID),
					zap.String("path", r.URL.Path),
					zap.String("reason", service.FailureReason(err)),
				)
				middlewares.WriteError(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			if len(allowed) > 0 {
				if _, ok := allowed[claims.Role]; !ok {
					g.logger.Warn("insufficient permissions",
						zap.String("request_id", requestID),
						zap.String("path", r.URL.Path),
						zap.Int("user_id", claims.UserID),
						zap.String("role", string(claims.Role)),
					)
					middlewares.WriteError(w, http.StatusForbidden, MsgInsufficientPerms)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// Authenticate admits any request carrying a valid token
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return g.Require()(next)
}

// bearerToken extracts the token from "Authorization: Bearer <token>"
func bearerToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// WithClaims stores token claims in the context
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims retrieves the token claims from context
func GetClaims(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok && claims != nil
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) (int, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// GetRole retrieves the caller's role from context
func GetRole(ctx context.Context) (models.Role, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
