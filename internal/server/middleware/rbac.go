package middleware

import (
	"net/http"
	"slices"
)

// Roles a user can hold within their organization. Admins manage the
// subscription and the active module set, members do the day-to-day safety
// work, viewers have read-only access for auditors and management.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// RequireRole restricts a route to users holding one of the given roles. It
// must run after Auth, which puts the role from the token into the request
// context.
//
// A request with no role in context gets 401 (not authenticated at all); a
// request with the wrong role gets 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok || role == "" {
				unauthorized(w)
				return
			}

			if !slices.Contains(roles, role) {
				forbidden(w, "role not permitted for this operation")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin restricts a route to organization admins.
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(RoleAdmin)
}
