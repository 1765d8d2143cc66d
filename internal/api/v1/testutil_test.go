package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhv360/platform/internal/activation"
	"github.com/bhv360/platform/internal/catalog"
	"github.com/bhv360/platform/internal/domain"
	"github.com/bhv360/platform/internal/server/middleware"
)

// ---------------------------------------------------------------------------
// Context helpers for injecting tenant/user/role into DoCtx requests.
// ---------------------------------------------------------------------------

func tenantCtx(tenantID uuid.UUID) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyTenantID, tenantID)
	return ctx
}

func adminCtx(tenantID uuid.UUID) context.Context {
	ctx := tenantCtx(tenantID)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, "admin")
	return ctx
}

func memberCtx(tenantID uuid.UUID) context.Context {
	ctx := tenantCtx(tenantID)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, "member")
	return ctx
}

// ---------------------------------------------------------------------------
// Deterministic UUIDs for stable tests
// ---------------------------------------------------------------------------

func fixedTenantID() uuid.UUID {
	return uuid.MustParse("00000000-0000-0000-0000-000000000001")
}

func fixedTenantID2() uuid.UUID {
	return uuid.MustParse("00000000-0000-0000-0000-000000000002")
}

// ---------------------------------------------------------------------------
// Test catalog
// ---------------------------------------------------------------------------

// apiTestCatalog is a small deterministic catalog for handler tests:
// a core module, a hybrid premium module depending on it, and a hidden module.
func apiTestCatalog() *catalog.Catalog {
	cat, err := catalog.New([]catalog.Module{
		{
			ID: "plotkaart", Name: "BHV Plotkaart", Description: "Interactieve plattegronden",
			Category: catalog.CategoryCore, Tier: catalog.TierStarter, Status: catalog.StatusActive,
			Core: true, Enabled: true, Visible: true, Implemented: true,
			Pricing: catalog.Pricing{Model: catalog.PricingFixed, BasePrice: 19},
			Rating:  4.8, Popularity: 90, Customers: 400,
		},
		{
			ID: "incidenten", Name: "Incident Management", Description: "Registratie en afhandeling van incidenten",
			Category: catalog.CategoryPremium, Tier: catalog.TierProfessional, Status: catalog.StatusActive,
			Enabled: true, Visible: true, Implemented: true,
			Pricing: catalog.Pricing{
				Model: catalog.PricingHybrid, BasePrice: 49, PerUser: 2.5, PerBuilding: 10,
				SetupFee: 100, FreeTrial: true, TrialDays: 30,
			},
			Rating: 4.5, Popularity: 80, Customers: 250,
			Dependencies: []string{"plotkaart"},
		},
		{
			ID: "intern-beheer", Name: "Intern Beheer", Description: "Verborgen beheermodule",
			Category: catalog.CategoryEnterprise, Tier: catalog.TierEnterprise, Status: catalog.StatusBeta,
			Enabled: true, Visible: false, Implemented: false,
			Pricing: catalog.Pricing{Model: catalog.PricingFixed, BasePrice: 75},
			Rating:  3.5, Popularity: 10, Customers: 5,
		},
	})
	if err != nil {
		panic(err)
	}
	return cat
}

// ---------------------------------------------------------------------------
// Mock DataStore
// ---------------------------------------------------------------------------

type mockDataStore struct {
	tenants     domain.TenantRepository
	users       domain.UserRepository
	activations domain.ActivationRepository
}

func (m *mockDataStore) Tenants() domain.TenantRepository         { return m.tenants }
func (m *mockDataStore) Users() domain.UserRepository             { return m.users }
func (m *mockDataStore) Activations() domain.ActivationRepository { return m.activations }

// ---------------------------------------------------------------------------
// Mock TenantRepository
// ---------------------------------------------------------------------------

type mockTenantRepo struct {
	createFunc    func(ctx context.Context, t *domain.Tenant) error
	getByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Tenant, error)
	updateFunc    func(ctx context.Context, t *domain.Tenant) error
	listFunc      func(ctx context.Context) ([]*domain.Tenant, error)
}

func (m *mockTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	return m.createFunc(ctx, t)
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return m.getBySlugFunc(ctx, slug)
}

func (m *mockTenantRepo) Update(ctx context.Context, t *domain.Tenant) error {
	return m.updateFunc(ctx, t)
}

func (m *mockTenantRepo) List(ctx context.Context) ([]*domain.Tenant, error) {
	return m.listFunc(ctx)
}

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	registerFunc     func(ctx context.Context, tenantSlug, email, password, name string) (*domain.User, error)
	loginFunc        func(ctx context.Context, tenantSlug, email, password string) (string, string, error)
	refreshTokenFunc func(ctx context.Context, refreshToken string) (string, error)
}

func (m *mockAuthService) Register(ctx context.Context, tenantSlug, email, password, name string) (*domain.User, error) {
	return m.registerFunc(ctx, tenantSlug, email, password, name)
}

func (m *mockAuthService) Login(ctx context.Context, tenantSlug, email, password string) (accessToken, refreshToken string, err error) {
	return m.loginFunc(ctx, tenantSlug, email, password)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshTokenFunc(ctx, refreshToken)
}

// ---------------------------------------------------------------------------
// Mock ActivationService
// ---------------------------------------------------------------------------

type mockActivationService struct {
	activateFunc   func(ctx context.Context, tenantID uuid.UUID, moduleID string) (*domain.ModuleActivation, error)
	deactivateFunc func(ctx context.Context, tenantID uuid.UUID, moduleID string) error
	listFunc       func(ctx context.Context, tenantID uuid.UUID) ([]*domain.ModuleActivation, error)
	quoteFunc      func(ctx context.Context, tenantID uuid.UUID, moduleIDs []string, userCount, buildingCount *int) (*activation.QuoteSummary, error)
}

func (m *mockActivationService) Activate(ctx context.Context, tenantID uuid.UUID, moduleID string) (*domain.ModuleActivation, error) {
	return m.activateFunc(ctx, tenantID, moduleID)
}

func (m *mockActivationService) Deactivate(ctx context.Context, tenantID uuid.UUID, moduleID string) error {
	return m.deactivateFunc(ctx, tenantID, moduleID)
}

func (m *mockActivationService) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.ModuleActivation, error) {
	return m.listFunc(ctx, tenantID)
}

func (m *mockActivationService) Quote(ctx context.Context, tenantID uuid.UUID, moduleIDs []string, userCount, buildingCount *int) (*activation.QuoteSummary, error) {
	return m.quoteFunc(ctx, tenantID, moduleIDs, userCount, buildingCount)
}
