package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bhv360/platform/internal/domain"
)

// ActivationRepo persists per-tenant module activations. Deactivation is a
// soft delete: the row keeps its history via deactivated_at.
type ActivationRepo struct {
	pool *pgxpool.Pool
}

func NewActivationRepo(pool *pgxpool.Pool) *ActivationRepo {
	return &ActivationRepo{pool: pool}
}

func (r *ActivationRepo) Create(ctx context.Context, a *domain.ModuleActivation) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO module_activations
		   (id, tenant_id, module_id, monthly_price, setup_fee, user_count, building_count, trial_ends_at, activated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.TenantID, a.ModuleID, a.MonthlyPrice, a.SetupFee,
		a.UserCount, a.BuildingCount, a.TrialEndsAt, a.ActivatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("activationRepo.Create: %w", domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("activationRepo.Create: %w", err)
	}

	return nil
}

func (r *ActivationRepo) GetByModule(ctx context.Context, tenantID uuid.UUID, moduleID string) (*domain.ModuleActivation, error) {
	var a domain.ModuleActivation

	err := r.pool.QueryRow(ctx,
		`SELECT id, tenant_id, module_id, monthly_price, setup_fee, user_count, building_count, trial_ends_at, activated_at
		 FROM module_activations
		 WHERE tenant_id = $1 AND module_id = $2 AND deactivated_at IS NULL`,
		tenantID, moduleID,
	).Scan(&a.ID, &a.TenantID, &a.ModuleID, &a.MonthlyPrice, &a.SetupFee,
		&a.UserCount, &a.BuildingCount, &a.TrialEndsAt, &a.ActivatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("activationRepo.GetByModule: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("activationRepo.GetByModule: %w", err)
	}

	return &a, nil
}

func (r *ActivationRepo) ListActive(ctx context.Context, tenantID uuid.UUID) ([]*domain.ModuleActivation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, module_id, monthly_price, setup_fee, user_count, building_count, trial_ends_at, activated_at
		 FROM module_activations
		 WHERE tenant_id = $1 AND deactivated_at IS NULL
		 ORDER BY activated_at`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("activationRepo.ListActive: %w", err)
	}
	defer rows.Close()

	var activations []*domain.ModuleActivation
	for rows.Next() {
		var a domain.ModuleActivation

		err = rows.Scan(&a.ID, &a.TenantID, &a.ModuleID, &a.MonthlyPrice, &a.SetupFee,
			&a.UserCount, &a.BuildingCount, &a.TrialEndsAt, &a.ActivatedAt)
		if err != nil {
			return nil, fmt.Errorf("activationRepo.ListActive: scan: %w", err)
		}

		activations = append(activations, &a)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("activationRepo.ListActive: rows: %w", err)
	}

	return activations, nil
}

func (r *ActivationRepo) Deactivate(ctx context.Context, tenantID uuid.UUID, moduleID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE module_activations SET deactivated_at = now()
		 WHERE tenant_id = $1 AND module_id = $2 AND deactivated_at IS NULL`,
		tenantID, moduleID,
	)
	if err != nil {
		return fmt.Errorf("activationRepo.Deactivate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activationRepo.Deactivate: %w", domain.ErrNotFound)
	}

	return nil
}
