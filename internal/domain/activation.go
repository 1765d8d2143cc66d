package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ModuleActivation records that a tenant has a catalog module turned on.
// MonthlyPrice and SetupFee are frozen at activation time so later catalog
// price changes do not silently rebill existing customers.
type ModuleActivation struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	ModuleID      string     `json:"module_id"`
	MonthlyPrice  float64    `json:"monthly_price"`
	SetupFee      float64    `json:"setup_fee"`
	UserCount     int        `json:"user_count"`
	BuildingCount int        `json:"building_count"`
	TrialEndsAt   *time.Time `json:"trial_ends_at,omitempty"`
	ActivatedAt   time.Time  `json:"activated_at"`
}

type ActivationRepository interface {
	Create(ctx context.Context, a *ModuleActivation) error
	GetByModule(ctx context.Context, tenantID uuid.UUID, moduleID string) (*ModuleActivation, error)
	ListActive(ctx context.Context, tenantID uuid.UUID) ([]*ModuleActivation, error)
	Deactivate(ctx context.Context, tenantID uuid.UUID, moduleID string) error
}
