package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bhv360/platform/internal/domain"
)

// Sentinel errors for the auth package.
var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUserAlreadyExists  = errors.New("auth: user already exists")
	ErrUserNotFound       = errors.New("auth: user not found")
	ErrTenantNotFound     = errors.New("auth: tenant not found")
)

// Service provides authentication operations. Users register and log in
// within a tenant, addressed by its slug.
type Service struct {
	users      domain.UserRepository
	tenants    domain.TenantRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates a new auth service.
func NewService(users domain.UserRepository, tenants domain.TenantRepository, jwtSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		tenants:    tenants,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a new user under the tenant identified by slug.
// The password is hashed with argon2id before storage.
func (s *Service) Register(ctx context.Context, tenantSlug, email, password, name string) (*domain.User, error) {
	tenant, err := s.tenants.GetBySlug(ctx, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", ErrTenantNotFound)
	}

	existing, err := s.users.GetByEmail(ctx, tenant.ID, email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("auth.Register: %w", ErrUserAlreadyExists)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         "member",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("auth.Register: %w", ErrUserAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	return user, nil
}

// Login validates email/password within a tenant and returns access + refresh
// JWT tokens. Tenant and credential failures are indistinguishable to callers.
func (s *Service) Login(ctx context.Context, tenantSlug, email, password string) (accessToken, refreshToken string, err error) {
	tenant, err := s.tenants.GetBySlug(ctx, tenantSlug)
	if err != nil {
		return "", "", fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	user, err := s.users.GetByEmail(ctx, tenant.ID, email)
	if err != nil {
		return "", "", fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	if !verifyPassword(password, user.PasswordHash) {
		return "", "", fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	accessToken, err = IssueAccessToken(s.jwtSecret, user.TenantID, user.ID, user.Role, s.accessTTL)
	if err != nil {
		return "", "", fmt.Errorf("auth.Login: %w", err)
	}

	refreshToken, err = IssueRefreshToken(s.jwtSecret, user.TenantID, user.ID, user.Role, s.refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("auth.Login: %w", err)
	}

	return accessToken, refreshToken, nil
}

// RefreshToken validates a refresh token and issues a new access token.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := ValidateToken(s.jwtSecret, refreshToken)
	if err != nil {
		return "", fmt.Errorf("auth.RefreshToken: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return "", fmt.Errorf("auth.RefreshToken: %w", ErrInvalidToken)
	}

	// Verify the user still exists and fetch current role.
	user, err := s.users.GetByID(ctx, claims.TenantID, claims.UserID)
	if err != nil {
		return "", fmt.Errorf("auth.RefreshToken: %w", ErrUserNotFound)
	}

	newAccess, err := IssueAccessToken(s.jwtSecret, user.TenantID, user.ID, user.Role, s.accessTTL)
	if err != nil {
		return "", fmt.Errorf("auth.RefreshToken: %w", err)
	}

	return newAccess, nil
}

// GetUser returns a user by ID (for middleware use).
func (s *Service) GetUser(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.GetUser: %w", err)
	}

	return user, nil
}
