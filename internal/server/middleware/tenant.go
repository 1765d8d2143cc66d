package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequireTenant refuses requests that are not scoped to an organization.
// Auth fills the tenant ID from the token's tid claim; a zero UUID means the
// token was minted without one and grants access to no tenant data.
func RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tid, ok := TenantIDFromContext(r.Context())
			if !ok || tid == uuid.Nil {
				forbidden(w, "request is not scoped to an organization")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
