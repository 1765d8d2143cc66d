package middleware

import (
	"context"

	"github.com/google/uuid"
)

// Request-scoped identity established by the Auth middleware: the BHV360
// organization the token was issued for, the acting user, and their role.
// Handlers read these through the FromContext helpers; tests inject them
// directly with context.WithValue.
type contextKey int

const (
	ContextKeyTenantID contextKey = iota
	ContextKeyUserID
	ContextKeyUserRole
)

// TenantIDFromContext returns the organization the request is scoped to.
// Every authenticated route operates within exactly one organization.
func TenantIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(ContextKeyTenantID).(uuid.UUID)
	return v, ok
}

// UserIDFromContext returns the authenticated user's ID.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return v, ok
}

// RoleFromContext returns the authenticated user's role within their
// organization, one of RoleAdmin, RoleMember, or RoleViewer.
func RoleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyUserRole).(string)
	return v, ok
}
