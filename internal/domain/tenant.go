package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is an organization using the platform. UserCount and BuildingCount
// describe the tenant's size and drive hybrid module pricing.
type Tenant struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	UserCount     int       `json:"user_count"`
	BuildingCount int       `json:"building_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TenantRepository interface {
	Create(ctx context.Context, t *Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	Update(ctx context.Context, t *Tenant) error
	List(ctx context.Context) ([]*Tenant, error)
}
