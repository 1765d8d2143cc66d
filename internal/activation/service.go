package activation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bhv360/platform/internal/catalog"
	"github.com/bhv360/platform/internal/domain"
	"github.com/bhv360/platform/internal/license"
	redisstore "github.com/bhv360/platform/internal/store/redis"
)

// Sentinel errors for the activation package.
var (
	ErrModuleUnknown     = errors.New("activation: unknown module")
	ErrModuleUnavailable = errors.New("activation: module not available for activation")
	ErrMissingDependency = errors.New("activation: missing module dependency")
	ErrAlreadyActive     = errors.New("activation: module already active")
	ErrCoreModule        = errors.New("activation: core modules cannot be deactivated")
	ErrModuleRequired    = errors.New("activation: module is required by another active module")
	ErrNotLicensed       = errors.New("activation: module not covered by deployment license")
	ErrLicenseLimit      = errors.New("activation: organization size exceeds deployment license")
)

// EventPublisher broadcasts activation lifecycle events. *redis.PubSub
// satisfies this interface.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Event is the payload published to the tenant's activation channel whenever
// a module is turned on or off.
type Event struct {
	Type     string    `json:"type"` // "module.activated" or "module.deactivated"
	TenantID uuid.UUID `json:"tenant_id"`
	ModuleID string    `json:"module_id"`
	At       time.Time `json:"at"`
}

// Service turns catalog modules on and off for tenants, enforcing the
// catalog's dependency and availability rules against the tenant's persisted
// activation set.
type Service struct {
	catalog     *catalog.Catalog
	activations domain.ActivationRepository
	tenants     domain.TenantRepository
	events      EventPublisher     // nil disables event publishing
	license     *license.Validator // nil disables license gating
}

// Option configures optional Service behavior.
type Option func(*Service)

// WithLicense enables license gating: enterprise-tier modules require an
// entitlement and activations are refused once the organization outgrows the
// licensed size. Used by self-hosted deployments; cloud deployments leave it
// unset.
func WithLicense(v *license.Validator) Option {
	return func(s *Service) { s.license = v }
}

// NewService creates an activation Service. events may be nil when no event
// transport is configured.
func NewService(cat *catalog.Catalog, activations domain.ActivationRepository, tenants domain.TenantRepository, events EventPublisher, opts ...Option) *Service {
	s := &Service{
		catalog:     cat,
		activations: activations,
		tenants:     tenants,
		events:      events,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog exposes the underlying module catalog for read-only queries.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Activate turns a module on for the tenant. The monthly price and setup fee
// are computed from the tenant's current size and frozen on the activation
// record. Modules with a free trial get a trial end date.
func (s *Service) Activate(ctx context.Context, tenantID uuid.UUID, moduleID string) (*domain.ModuleActivation, error) {
	m, ok := s.catalog.ByID(moduleID)
	if !ok {
		return nil, fmt.Errorf("activation.Activate: %q: %w", moduleID, ErrModuleUnknown)
	}
	if !m.Enabled || m.Status == catalog.StatusDeprecated {
		return nil, fmt.Errorf("activation.Activate: %q: %w", moduleID, ErrModuleUnavailable)
	}

	if s.license != nil && m.Tier == catalog.TierEnterprise {
		if err := s.license.Validate(); err != nil {
			return nil, fmt.Errorf("activation.Activate: %q: %v: %w", moduleID, err, ErrNotLicensed)
		}
		if !s.license.AllowsModule(moduleID) {
			return nil, fmt.Errorf("activation.Activate: %q: %w", moduleID, ErrNotLicensed)
		}
	}

	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("activation.Activate: tenant: %w", err)
	}

	if s.license != nil && !s.license.AllowsSize(tenant.UserCount, tenant.BuildingCount) {
		return nil, fmt.Errorf("activation.Activate: %d users, %d buildings: %w",
			tenant.UserCount, tenant.BuildingCount, ErrLicenseLimit)
	}

	existing, err := s.activations.GetByModule(ctx, tenantID, moduleID)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("activation.Activate: %q: %w", moduleID, ErrAlreadyActive)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("activation.Activate: %w", err)
	}

	active, err := s.activeModuleIDs(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("activation.Activate: %w", err)
	}

	if !s.catalog.CanActivate(moduleID, active) {
		missing := s.catalog.MissingDependencies(moduleID, active)
		return nil, fmt.Errorf("activation.Activate: %q requires %s: %w",
			moduleID, strings.Join(missing, ", "), ErrMissingDependency)
	}

	now := time.Now()
	quote := catalog.Price(m, tenant.UserCount, tenant.BuildingCount)

	a := &domain.ModuleActivation{
		ID:            uuid.New(),
		TenantID:      tenantID,
		ModuleID:      moduleID,
		MonthlyPrice:  quote.Price,
		SetupFee:      m.Pricing.SetupFee,
		UserCount:     tenant.UserCount,
		BuildingCount: tenant.BuildingCount,
		ActivatedAt:   now,
	}

	if m.Pricing.FreeTrial && m.Pricing.TrialDays > 0 {
		trialEnd := now.AddDate(0, 0, m.Pricing.TrialDays)
		a.TrialEndsAt = &trialEnd
	}

	if err := s.activations.Create(ctx, a); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("activation.Activate: %q: %w", moduleID, ErrAlreadyActive)
		}
		return nil, fmt.Errorf("activation.Activate: %w", err)
	}

	s.publish(ctx, tenantID, Event{
		Type:     "module.activated",
		TenantID: tenantID,
		ModuleID: moduleID,
		At:       now,
	})

	return a, nil
}

// Deactivate turns a module off for the tenant. Core modules are refused, as
// is any module that another active module still depends on.
func (s *Service) Deactivate(ctx context.Context, tenantID uuid.UUID, moduleID string) error {
	if m, ok := s.catalog.ByID(moduleID); ok && m.Core {
		return fmt.Errorf("activation.Deactivate: %q: %w", moduleID, ErrCoreModule)
	}

	active, err := s.activeModuleIDs(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("activation.Deactivate: %w", err)
	}

	var dependents []string
	for _, id := range active {
		if id == moduleID {
			continue
		}
		for _, dep := range s.catalog.Dependencies(id) {
			if dep == moduleID {
				dependents = append(dependents, id)
			}
		}
	}
	if len(dependents) > 0 {
		return fmt.Errorf("activation.Deactivate: %q is required by %s: %w",
			moduleID, strings.Join(dependents, ", "), ErrModuleRequired)
	}

	if err := s.activations.Deactivate(ctx, tenantID, moduleID); err != nil {
		return fmt.Errorf("activation.Deactivate: %w", err)
	}

	s.publish(ctx, tenantID, Event{
		Type:     "module.deactivated",
		TenantID: tenantID,
		ModuleID: moduleID,
		At:       time.Now(),
	})

	return nil
}

// List returns the tenant's active module activations.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.ModuleActivation, error) {
	activations, err := s.activations.ListActive(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("activation.List: %w", err)
	}
	return activations, nil
}

// QuoteLine is the cost breakdown for a single module in a quote.
type QuoteLine struct {
	ModuleID     string  `json:"module_id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	Model        string  `json:"model"`
	SetupFee     float64 `json:"setup_fee"`
}

// QuoteSummary is the aggregate cost of a prospective module set.
type QuoteSummary struct {
	Lines         []QuoteLine `json:"lines"`
	MonthlyTotal  float64     `json:"monthly_total"`
	SetupTotal    float64     `json:"setup_total"`
	UserCount     int         `json:"user_count"`
	BuildingCount int         `json:"building_count"`
}

// Quote prices a prospective module set for the tenant. userCount and
// buildingCount override the tenant's stored size when non-nil. Unknown ids
// are skipped rather than failing the whole quote.
func (s *Service) Quote(ctx context.Context, tenantID uuid.UUID, moduleIDs []string, userCount, buildingCount *int) (*QuoteSummary, error) {
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("activation.Quote: tenant: %w", err)
	}

	users := tenant.UserCount
	if userCount != nil {
		users = *userCount
	}
	buildings := tenant.BuildingCount
	if buildingCount != nil {
		buildings = *buildingCount
	}

	summary := &QuoteSummary{
		Lines:         []QuoteLine{},
		UserCount:     max(users, 0),
		BuildingCount: max(buildings, 0),
	}

	for _, id := range moduleIDs {
		m, ok := s.catalog.ByID(id)
		if !ok {
			continue
		}
		q := catalog.Price(m, users, buildings)
		summary.Lines = append(summary.Lines, QuoteLine{
			ModuleID:     m.ID,
			Name:         m.Name,
			MonthlyPrice: q.Price,
			Model:        q.Model,
			SetupFee:     m.Pricing.SetupFee,
		})
		summary.MonthlyTotal += q.Price
		summary.SetupTotal += m.Pricing.SetupFee
	}

	return summary, nil
}

func (s *Service) activeModuleIDs(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	activations, err := s.activations.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(activations))
	for _, a := range activations {
		ids = append(ids, a.ModuleID)
	}
	return ids, nil
}

// publish sends an activation event to the tenant channel. Event delivery is
// best-effort: failures are logged, never surfaced to the caller.
func (s *Service) publish(ctx context.Context, tenantID uuid.UUID, ev Event) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("module_id", ev.ModuleID).Msg("activation: marshal event")
		return
	}

	if err := s.events.Publish(ctx, redisstore.ActivationChannel(tenantID), payload); err != nil {
		log.Warn().Err(err).Str("module_id", ev.ModuleID).Msg("activation: publish event")
	}
}
