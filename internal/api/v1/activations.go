package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bhv360/platform/internal/activation"
	"github.com/bhv360/platform/internal/domain"
	"github.com/bhv360/platform/internal/server/middleware"
)

type ListActivationsInput struct{}

type ListActivationsOutput struct {
	Body []*domain.ModuleActivation
}

type ActivateModuleInput struct {
	Body struct {
		ModuleID string `json:"module_id" minLength:"1" maxLength:"63" doc:"Catalog module ID"`
	}
}

type ActivateModuleOutput struct {
	Body *domain.ModuleActivation
}

type DeactivateModuleInput struct {
	ModuleID string `path:"moduleID" maxLength:"63" doc:"Catalog module ID"`
}

type QuoteInput struct {
	Body struct {
		ModuleIDs     []string `json:"module_ids" minItems:"1" maxItems:"100" doc:"Modules to price"`
		UserCount     *int     `json:"user_count,omitempty" minimum:"0" doc:"Override the tenant's user count"`
		BuildingCount *int     `json:"building_count,omitempty" minimum:"0" doc:"Override the tenant's building count"`
	}
}

type QuoteOutput struct {
	Body *activation.QuoteSummary
}

func RegisterActivationRoutes(api huma.API, activations ActivationService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-activations",
		Method:      http.MethodGet,
		Path:        "/activations",
		Summary:     "List the tenant's active modules",
		Tags:        []string{"Activations"},
	}, func(ctx context.Context, _ *ListActivationsInput) (*ListActivationsOutput, error) {
		tenantID, ok := middleware.TenantIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing tenant context")
		}

		list, err := activations.List(ctx, tenantID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list activations", err)
		}

		return &ListActivationsOutput{Body: list}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "activate-module",
		Method:      http.MethodPost,
		Path:        "/activations",
		Summary:     "Activate a module for the tenant",
		Description: "The monthly price and setup fee are computed from the tenant's current size and frozen on the activation.",
		Tags:        []string{"Activations"},
	}, func(ctx context.Context, input *ActivateModuleInput) (*ActivateModuleOutput, error) {
		tenantID, ok := middleware.TenantIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing tenant context")
		}

		role, ok := middleware.RoleFromContext(ctx)
		if !ok || role != middleware.RoleAdmin {
			return nil, huma.Error403Forbidden("admin role required")
		}

		a, err := activations.Activate(ctx, tenantID, input.Body.ModuleID)
		if err != nil {
			switch {
			case errors.Is(err, activation.ErrModuleUnknown):
				return nil, huma.Error404NotFound("module not found")
			case errors.Is(err, activation.ErrModuleUnavailable):
				return nil, huma.Error400BadRequest("module is not available for activation")
			case errors.Is(err, activation.ErrMissingDependency):
				return nil, huma.Error409Conflict(err.Error())
			case errors.Is(err, activation.ErrAlreadyActive):
				return nil, huma.Error409Conflict("module already active")
			case errors.Is(err, activation.ErrNotLicensed):
				return nil, huma.Error403Forbidden("module not covered by deployment license")
			case errors.Is(err, activation.ErrLicenseLimit):
				return nil, huma.Error403Forbidden("organization size exceeds deployment license")
			case errors.Is(err, domain.ErrNotFound):
				return nil, huma.Error404NotFound("tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to activate module", err)
		}

		return &ActivateModuleOutput{Body: a}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "deactivate-module",
		Method:      http.MethodDelete,
		Path:        "/activations/{moduleID}",
		Summary:     "Deactivate a module for the tenant",
		Tags:        []string{"Activations"},
	}, func(ctx context.Context, input *DeactivateModuleInput) (*struct{}, error) {
		tenantID, ok := middleware.TenantIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing tenant context")
		}

		role, ok := middleware.RoleFromContext(ctx)
		if !ok || role != middleware.RoleAdmin {
			return nil, huma.Error403Forbidden("admin role required")
		}

		err := activations.Deactivate(ctx, tenantID, input.ModuleID)
		if err != nil {
			switch {
			case errors.Is(err, activation.ErrCoreModule):
				return nil, huma.Error400BadRequest("core modules cannot be deactivated")
			case errors.Is(err, activation.ErrModuleRequired):
				return nil, huma.Error409Conflict(err.Error())
			case errors.Is(err, domain.ErrNotFound):
				return nil, huma.Error404NotFound("module not active")
			}
			return nil, huma.Error500InternalServerError("failed to deactivate module", err)
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "quote-modules",
		Method:      http.MethodPost,
		Path:        "/activations/quote",
		Summary:     "Price a prospective module set",
		Description: "Unknown module IDs are skipped. Counts default to the tenant's stored size.",
		Tags:        []string{"Activations"},
	}, func(ctx context.Context, input *QuoteInput) (*QuoteOutput, error) {
		tenantID, ok := middleware.TenantIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing tenant context")
		}

		summary, err := activations.Quote(ctx, tenantID, input.Body.ModuleIDs, input.Body.UserCount, input.Body.BuildingCount)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to compute quote", err)
		}

		return &QuoteOutput{Body: summary}, nil
	})
}
