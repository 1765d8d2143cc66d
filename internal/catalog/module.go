package catalog

// Category classifies a module within the commercial catalog.
type Category string

const (
	CategoryCore       Category = "core"
	CategoryPremium    Category = "premium"
	CategoryEnterprise Category = "enterprise"
)

// Tier is the subscription bundle level a module belongs to.
type Tier string

const (
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// Status is the release state of a module.
type Status string

const (
	StatusActive     Status = "active"
	StatusBeta       Status = "beta"
	StatusDeprecated Status = "deprecated"
)

// PricingModel selects how a module's monthly price is computed.
type PricingModel string

const (
	// PricingFixed charges the base price regardless of tenant size.
	PricingFixed PricingModel = "fixed"
	// PricingHybrid charges the base price plus per-user and per-building increments.
	PricingHybrid PricingModel = "hybrid"
)

// Pricing describes how a module is billed. Amounts are in euros per month,
// except SetupFee which is a one-time charge.
type Pricing struct {
	Model       PricingModel `json:"model"`
	BasePrice   float64      `json:"base_price"`
	PerUser     float64      `json:"per_user,omitempty"`
	PerBuilding float64      `json:"per_building,omitempty"`
	SetupFee    float64      `json:"setup_fee,omitempty"`
	FreeTrial   bool         `json:"free_trial,omitempty"`
	TrialDays   int          `json:"trial_days,omitempty"`
}

// Module is a single catalog entry. The catalog is static reference data:
// entries are defined once at load time and never mutated afterwards.
type Module struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Tier        Tier     `json:"tier"`
	Status      Status   `json:"status"`

	// Core modules are bundled with every subscription and are always
	// activatable without dependency checks.
	Core        bool `json:"core"`
	Enabled     bool `json:"enabled"`
	Visible     bool `json:"visible"`
	Implemented bool `json:"implemented"`

	Pricing      Pricing  `json:"pricing"`
	Features     []string `json:"features,omitempty"`
	Rating       float64  `json:"rating"`
	Popularity   int      `json:"popularity"`
	Customers    int      `json:"customers"`
	Dependencies []string `json:"dependencies,omitempty"`
}

func validCategory(c Category) bool {
	switch c {
	case CategoryCore, CategoryPremium, CategoryEnterprise:
		return true
	}
	return false
}

func validTier(t Tier) bool {
	switch t {
	case TierStarter, TierProfessional, TierEnterprise:
		return true
	}
	return false
}

func validStatus(s Status) bool {
	switch s {
	case StatusActive, StatusBeta, StatusDeprecated:
		return true
	}
	return false
}

func validPricingModel(m PricingModel) bool {
	switch m {
	case PricingFixed, PricingHybrid:
		return true
	}
	return false
}
