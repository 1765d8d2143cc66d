package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhv360/platform/internal/activation"
	v1 "github.com/bhv360/platform/internal/api/v1"
	"github.com/bhv360/platform/internal/domain"
)

// ---------------------------------------------------------------------------
// GET /activations
// ---------------------------------------------------------------------------

func TestListActivations(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockActivationService{
			listFunc: func(_ context.Context, tenantID uuid.UUID) ([]*domain.ModuleActivation, error) {
				assert.Equal(t, fixedTenantID(), tenantID)
				return []*domain.ModuleActivation{
					{ID: uuid.New(), TenantID: tenantID, ModuleID: "plotkaart", MonthlyPrice: 19},
					{ID: uuid.New(), TenantID: tenantID, ModuleID: "incidenten", MonthlyPrice: 94},
				}, nil
			},
		}

		v1.RegisterActivationRoutes(api, svc)

		resp := api.GetCtx(memberCtx(fixedTenantID()), "/activations")

		require.Equal(t, http.StatusOK, resp.Code)

		var body []*domain.ModuleActivation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 2)
		assert.Equal(t, "plotkaart", body[0].ModuleID)
	})

	t.Run("missing_tenant_context", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterActivationRoutes(api, &mockActivationService{})

		resp := api.GetCtx(context.Background(), "/activations")

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})
}

// ---------------------------------------------------------------------------
// POST /activations
// ---------------------------------------------------------------------------

func TestActivateModule(t *testing.T) {
	t.Parallel()

	t.Run("happy_path_admin", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		trialEnd := time.Now().AddDate(0, 0, 30)
		svc := &mockActivationService{
			activateFunc: func(_ context.Context, tenantID uuid.UUID, moduleID string) (*domain.ModuleActivation, error) {
				assert.Equal(t, fixedTenantID(), tenantID)
				assert.Equal(t, "incidenten", moduleID)
				return &domain.ModuleActivation{
					ID: uuid.New(), TenantID: tenantID, ModuleID: moduleID,
					MonthlyPrice: 94, SetupFee: 100, TrialEndsAt: &trialEnd,
				}, nil
			},
		}

		v1.RegisterActivationRoutes(api, svc)

		resp := api.PostCtx(adminCtx(fixedTenantID()), "/activations", map[string]any{
			"module_id": "incidenten",
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var body domain.ModuleActivation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "incidenten", body.ModuleID)
		assert.InDelta(t, 94.0, body.MonthlyPrice, 1e-9)
		assert.NotNil(t, body.TrialEndsAt)
	})

	t.Run("non_admin_forbidden", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterActivationRoutes(api, &mockActivationService{})

		resp := api.PostCtx(memberCtx(fixedTenantID()), "/activations", map[string]any{
			"module_id": "incidenten",
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown module", err: activation.ErrModuleUnknown, wantStatus: http.StatusNotFound},
		{name: "unavailable module", err: activation.ErrModuleUnavailable, wantStatus: http.StatusBadRequest},
		{name: "missing dependency", err: activation.ErrMissingDependency, wantStatus: http.StatusConflict},
		{name: "already active", err: activation.ErrAlreadyActive, wantStatus: http.StatusConflict},
		{name: "not licensed", err: activation.ErrNotLicensed, wantStatus: http.StatusForbidden},
		{name: "license size exceeded", err: activation.ErrLicenseLimit, wantStatus: http.StatusForbidden},
		{name: "tenant not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			svc := &mockActivationService{
				activateFunc: func(_ context.Context, _ uuid.UUID, _ string) (*domain.ModuleActivation, error) {
					return nil, tc.err
				},
			}

			v1.RegisterActivationRoutes(api, svc)

			resp := api.PostCtx(adminCtx(fixedTenantID()), "/activations", map[string]any{
				"module_id": "whatever",
			})

			assert.Equal(t, tc.wantStatus, resp.Code)
		})
	}
}

// ---------------------------------------------------------------------------
// DELETE /activations/{moduleID}
// ---------------------------------------------------------------------------

func TestDeactivateModule(t *testing.T) {
	t.Parallel()

	t.Run("happy_path_admin", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		var gotModuleID string
		svc := &mockActivationService{
			deactivateFunc: func(_ context.Context, tenantID uuid.UUID, moduleID string) error {
				assert.Equal(t, fixedTenantID(), tenantID)
				gotModuleID = moduleID
				return nil
			},
		}

		v1.RegisterActivationRoutes(api, svc)

		resp := api.DeleteCtx(adminCtx(fixedTenantID()), "/activations/incidenten")

		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.Equal(t, "incidenten", gotModuleID)
	})

	t.Run("non_admin_forbidden", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterActivationRoutes(api, &mockActivationService{})

		resp := api.DeleteCtx(memberCtx(fixedTenantID()), "/activations/incidenten")

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "core module", err: activation.ErrCoreModule, wantStatus: http.StatusBadRequest},
		{name: "required by another module", err: activation.ErrModuleRequired, wantStatus: http.StatusConflict},
		{name: "not active", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			svc := &mockActivationService{
				deactivateFunc: func(_ context.Context, _ uuid.UUID, _ string) error {
					return tc.err
				},
			}

			v1.RegisterActivationRoutes(api, svc)

			resp := api.DeleteCtx(adminCtx(fixedTenantID()), "/activations/whatever")

			assert.Equal(t, tc.wantStatus, resp.Code)
		})
	}
}

// ---------------------------------------------------------------------------
// POST /activations/quote
// ---------------------------------------------------------------------------

func TestQuoteModules(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockActivationService{
			quoteFunc: func(_ context.Context, tenantID uuid.UUID, moduleIDs []string, userCount, buildingCount *int) (*activation.QuoteSummary, error) {
				assert.Equal(t, fixedTenantID(), tenantID)
				assert.Equal(t, []string{"plotkaart", "incidenten"}, moduleIDs)
				require.NotNil(t, userCount)
				assert.Equal(t, 20, *userCount)
				assert.Nil(t, buildingCount, "omitted override stays nil")
				return &activation.QuoteSummary{
					Lines: []activation.QuoteLine{
						{ModuleID: "plotkaart", Name: "BHV Plotkaart", MonthlyPrice: 19, Model: "Vast tarief"},
						{ModuleID: "incidenten", Name: "Incident Management", MonthlyPrice: 119, Model: "Hybride", SetupFee: 100},
					},
					MonthlyTotal:  138,
					SetupTotal:    100,
					UserCount:     20,
					BuildingCount: 2,
				}, nil
			},
		}

		v1.RegisterActivationRoutes(api, svc)

		resp := api.PostCtx(memberCtx(fixedTenantID()), "/activations/quote", map[string]any{
			"module_ids": []string{"plotkaart", "incidenten"},
			"user_count": 20,
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var body activation.QuoteSummary
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Lines, 2)
		assert.InDelta(t, 138.0, body.MonthlyTotal, 1e-9)
		assert.InDelta(t, 100.0, body.SetupTotal, 1e-9)
	})

	t.Run("empty_module_list_rejected", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterActivationRoutes(api, &mockActivationService{})

		resp := api.PostCtx(memberCtx(fixedTenantID()), "/activations/quote", map[string]any{
			"module_ids": []string{},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("tenant_not_found", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockActivationService{
			quoteFunc: func(_ context.Context, _ uuid.UUID, _ []string, _, _ *int) (*activation.QuoteSummary, error) {
				return nil, domain.ErrNotFound
			},
		}

		v1.RegisterActivationRoutes(api, svc)

		resp := api.PostCtx(memberCtx(fixedTenantID()), "/activations/quote", map[string]any{
			"module_ids": []string{"plotkaart"},
		})

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
