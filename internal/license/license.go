package license

import (
	"errors"
	"slices"
	"time"
)

//nolint:gochecknoglobals // sentinel error
var ErrLicenseExpired = errors.New("license: expired")

//nolint:gochecknoglobals // sentinel error
var ErrNoLicense = errors.New("license: none configured")

// License entitles a self-hosted deployment to enterprise-tier modules.
// Cloud deployments never carry a license; entitlement there is commercial,
// handled outside the service.
type License struct {
	Org          string
	MaxUsers     int
	MaxBuildings int
	Modules      []string // licensed enterprise module ids
	ExpiresAt    time.Time
	IssuedAt     time.Time
}

// Validator checks deployment licenses.
type Validator struct {
	license *License
}

// NewValidator creates a Validator. If license is nil, all checks fail with ErrNoLicense.
func NewValidator(license *License) *Validator {
	return &Validator{license: license}
}

// Validate checks if the license is present and not expired.
func (v *Validator) Validate() error {
	if v.license == nil {
		return ErrNoLicense
	}

	if time.Now().After(v.license.ExpiresAt) {
		return ErrLicenseExpired
	}

	return nil
}

// AllowsModule checks if a specific enterprise module is licensed.
func (v *Validator) AllowsModule(moduleID string) bool {
	if v.license == nil {
		return false
	}

	return slices.Contains(v.license.Modules, moduleID)
}

// AllowsSize checks the organization size against the licensed limits. A zero
// limit means unbounded; without a license there are no size limits to apply
// (module entitlement is gated separately by AllowsModule).
func (v *Validator) AllowsSize(users, buildings int) bool {
	if v.license == nil {
		return true
	}

	if v.license.MaxUsers > 0 && users > v.license.MaxUsers {
		return false
	}
	if v.license.MaxBuildings > 0 && buildings > v.license.MaxBuildings {
		return false
	}
	return true
}
