package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bhv360/platform/internal/auth"
)

// Auth authenticates requests with a Bearer JWT access token and stores the
// tenant ID, user ID, and role in the request context. Refresh tokens are
// rejected here; they are only accepted by the token refresh endpoint.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractBearer(r)
			if tok == "" {
				unauthorized(w)
				return
			}

			ctx, ok := authenticateJWT(r.Context(), tok, jwtSecret)
			if !ok {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, `{"title":"Unauthorized","status":401,"detail":"missing or invalid credentials"}`, http.StatusUnauthorized)
}

func forbidden(w http.ResponseWriter, detail string) {
	http.Error(w, fmt.Sprintf(`{"title":"Forbidden","status":403,"detail":%q}`, detail), http.StatusForbidden)
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}

func authenticateJWT(ctx context.Context, tokenStr, secret string) (context.Context, bool) {
	claims, err := auth.ValidateToken(secret, tokenStr)
	if err != nil {
		return ctx, false
	}

	// Only access tokens grant API access.
	if claims.TokenType != auth.TokenTypeAccess {
		return ctx, false
	}

	// A token carrying no organization or user grants nothing.
	if claims.TenantID == uuid.Nil || claims.UserID == uuid.Nil {
		return ctx, false
	}

	ctx = context.WithValue(ctx, ContextKeyTenantID, claims.TenantID)
	ctx = context.WithValue(ctx, ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, ContextKeyUserRole, claims.Role)
	return ctx, true
}
