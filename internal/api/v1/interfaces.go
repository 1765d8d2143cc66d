package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhv360/platform/internal/activation"
	"github.com/bhv360/platform/internal/domain"
)

// DataStore abstracts the repository accessor pattern for handler testing.
// *postgres.Store satisfies this interface.
type DataStore interface {
	Tenants() domain.TenantRepository
	Users() domain.UserRepository
	Activations() domain.ActivationRepository
}

// AuthService abstracts authentication operations for handler testing.
// *auth.Service satisfies this interface.
type AuthService interface {
	Register(ctx context.Context, tenantSlug, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, tenantSlug, email, password string) (accessToken, refreshToken string, err error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}

// ActivationService abstracts module activation operations for handler
// testing. *activation.Service satisfies this interface.
type ActivationService interface {
	Activate(ctx context.Context, tenantID uuid.UUID, moduleID string) (*domain.ModuleActivation, error)
	Deactivate(ctx context.Context, tenantID uuid.UUID, moduleID string) error
	List(ctx context.Context, tenantID uuid.UUID) ([]*domain.ModuleActivation, error)
	Quote(ctx context.Context, tenantID uuid.UUID, moduleIDs []string, userCount, buildingCount *int) (*activation.QuoteSummary, error)
}
