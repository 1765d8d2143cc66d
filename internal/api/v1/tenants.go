package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/bhv360/platform/internal/domain"
	"github.com/bhv360/platform/internal/server/middleware"
)

type CreateTenantInput struct {
	Body struct {
		Name          string `json:"name" minLength:"1" maxLength:"255" doc:"Tenant name"`
		Slug          string `json:"slug" minLength:"1" maxLength:"63" pattern:"^[a-z0-9]+(?:-[a-z0-9]+)*$" doc:"URL-safe slug (lowercase alphanumeric with hyphens)"`
		UserCount     int    `json:"user_count,omitempty" minimum:"0" doc:"Number of users (drives hybrid pricing, default 10)"`
		BuildingCount int    `json:"building_count,omitempty" minimum:"0" doc:"Number of buildings (drives hybrid pricing, default 1)"`
	}
}

type CreateTenantOutput struct {
	Body *domain.Tenant
}

type ListTenantsInput struct{}

type ListTenantsOutput struct {
	Body []*domain.Tenant
}

type GetCurrentTenantInput struct{}

type GetCurrentTenantOutput struct {
	Body *domain.Tenant
}

type UpdateTenantSizeInput struct {
	Body struct {
		UserCount     *int `json:"user_count,omitempty" minimum:"0" doc:"Number of users"`
		BuildingCount *int `json:"building_count,omitempty" minimum:"0" doc:"Number of buildings"`
	}
}

type UpdateTenantSizeOutput struct {
	Body *domain.Tenant
}

// Default tenant size when not specified at creation. Most customers start
// with a single building.
const (
	defaultUserCount     = 10
	defaultBuildingCount = 1
)

func RegisterTenantRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-tenant",
		Method:      http.MethodPost,
		Path:        "/tenants",
		Summary:     "Create a new tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *CreateTenantInput) (*CreateTenantOutput, error) {
		role, ok := middleware.RoleFromContext(ctx)
		if !ok || role != middleware.RoleAdmin {
			return nil, huma.Error403Forbidden("admin role required")
		}

		userCount := input.Body.UserCount
		if userCount == 0 {
			userCount = defaultUserCount
		}
		buildingCount := input.Body.BuildingCount
		if buildingCount == 0 {
			buildingCount = defaultBuildingCount
		}

		now := time.Now()
		t := &domain.Tenant{
			ID:            uuid.New(),
			Name:          input.Body.Name,
			Slug:          input.Body.Slug,
			UserCount:     userCount,
			BuildingCount: buildingCount,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := store.Tenants().Create(ctx, t); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, huma.Error409Conflict("tenant slug already in use")
			}
			return nil, huma.Error500InternalServerError("failed to create tenant", err)
		}

		return &CreateTenantOutput{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tenants",
		Method:      http.MethodGet,
		Path:        "/tenants",
		Summary:     "List all tenants",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, _ *ListTenantsInput) (*ListTenantsOutput, error) {
		role, ok := middleware.RoleFromContext(ctx)
		if !ok || role != middleware.RoleAdmin {
			return nil, huma.Error403Forbidden("admin role required")
		}

		tenants, err := store.Tenants().List(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list tenants", err)
		}

		return &ListTenantsOutput{Body: tenants}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-current-tenant",
		Method:      http.MethodGet,
		Path:        "/tenants/me",
		Summary:     "Get the authenticated user's tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, _ *GetCurrentTenantInput) (*GetCurrentTenantOutput, error) {
		tenantID, ok := middleware.TenantIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing tenant context")
		}

		t, err := store.Tenants().GetByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to get tenant", err)
		}

		return &GetCurrentTenantOutput{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-tenant-size",
		Method:      http.MethodPatch,
		Path:        "/tenants/me/size",
		Summary:     "Update the tenant's user and building counts",
		Description: "Size changes affect future quotes and activations; prices on existing activations stay frozen.",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *UpdateTenantSizeInput) (*UpdateTenantSizeOutput, error) {
		tenantID, ok := middleware.TenantIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing tenant context")
		}

		role, ok := middleware.RoleFromContext(ctx)
		if !ok || role != middleware.RoleAdmin {
			return nil, huma.Error403Forbidden("admin role required")
		}

		t, err := store.Tenants().GetByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to get tenant", err)
		}

		if input.Body.UserCount != nil {
			t.UserCount = *input.Body.UserCount
		}
		if input.Body.BuildingCount != nil {
			t.BuildingCount = *input.Body.BuildingCount
		}
		t.UpdatedAt = time.Now()

		if err := store.Tenants().Update(ctx, t); err != nil {
			return nil, huma.Error500InternalServerError("failed to update tenant", err)
		}

		return &UpdateTenantSizeOutput{Body: t}, nil
	})
}
