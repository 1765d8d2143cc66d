package catalog

import "slices"

// Pricing model labels as shown to customers.
const (
	ModelLabelFixed  = "Vast tarief"
	ModelLabelHybrid = "Hybride"
)

// Quote is the computed monthly price for one module at a given tenant size.
type Quote struct {
	Price float64 `json:"price"`
	Model string  `json:"model"`
}

// Price computes the monthly price for a module given the tenant's user and
// building counts. Fixed-model modules charge the base price regardless of
// tenant size; hybrid-model modules scale linearly with both counts. Negative
// counts are clamped to zero, so the result is always finite and >= 0.
func Price(m Module, userCount, buildingCount int) Quote {
	if m.Pricing.Model == PricingFixed {
		return Quote{Price: m.Pricing.BasePrice, Model: ModelLabelFixed}
	}

	users := max(userCount, 0)
	buildings := max(buildingCount, 0)

	price := m.Pricing.BasePrice +
		m.Pricing.PerUser*float64(users) +
		m.Pricing.PerBuilding*float64(buildings)

	return Quote{Price: price, Model: ModelLabelHybrid}
}

// ActivationCost resolves the module and returns its monthly price for the
// given tenant size. Unknown ids cost 0.
func (c *Catalog) ActivationCost(id string, userCount, buildingCount int) float64 {
	m, ok := c.ByID(id)
	if !ok {
		return 0
	}
	return Price(m, userCount, buildingCount).Price
}

// SetupCost returns the module's one-time setup fee, or 0 when none is
// defined or the id is unknown.
func (c *Catalog) SetupCost(id string) float64 {
	m, ok := c.ByID(id)
	if !ok {
		return 0
	}
	return m.Pricing.SetupFee
}

// TotalCost sums the monthly activation cost of every id in the list.
// Duplicate ids are counted once per occurrence; unknown ids contribute 0.
func (c *Catalog) TotalCost(ids []string, userCount, buildingCount int) float64 {
	var total float64
	for _, id := range ids {
		total += c.ActivationCost(id, userCount, buildingCount)
	}
	return total
}

// TotalSetupCost sums the one-time setup fee of every id in the list.
func (c *Catalog) TotalSetupCost(ids []string) float64 {
	var total float64
	for _, id := range ids {
		total += c.SetupCost(id)
	}
	return total
}

// Dependencies returns the module's declared dependency ids. Unknown ids and
// modules without dependencies both yield an empty result.
func (c *Catalog) Dependencies(id string) []string {
	m, ok := c.ByID(id)
	if !ok {
		return nil
	}
	return slices.Clone(m.Dependencies)
}

// CanActivate reports whether the module may be activated given the set of
// already-active module ids. Core modules are always activatable; any other
// module requires every declared dependency to be present in active. Unknown
// ids are never activatable.
func (c *Catalog) CanActivate(id string, active []string) bool {
	m, ok := c.ByID(id)
	if !ok {
		return false
	}
	if m.Core {
		return true
	}

	for _, dep := range m.Dependencies {
		if !slices.Contains(active, dep) {
			return false
		}
	}
	return true
}

// MissingDependencies returns the dependency ids not present in active, in
// declaration order. Core modules and unknown ids report nothing missing.
func (c *Catalog) MissingDependencies(id string, active []string) []string {
	m, ok := c.ByID(id)
	if !ok || m.Core {
		return nil
	}

	var missing []string
	for _, dep := range m.Dependencies {
		if !slices.Contains(active, dep) {
			missing = append(missing, dep)
		}
	}
	return missing
}

// HasFreeTrial reports whether the module offers a free trial.
func (c *Catalog) HasFreeTrial(id string) bool {
	m, ok := c.ByID(id)
	return ok && m.Pricing.FreeTrial
}

// TrialDays returns the module's free-trial length in days, or 0 when the
// module has no trial or the id is unknown.
func (c *Catalog) TrialDays(id string) int {
	m, ok := c.ByID(id)
	if !ok || !m.Pricing.FreeTrial {
		return 0
	}
	return m.Pricing.TrialDays
}

// Stats aggregates catalog-wide counts. Every field is present even when zero.
type Stats struct {
	Total          int     `json:"total"`
	Core           int     `json:"core"`
	Premium        int     `json:"premium"`
	Enterprise     int     `json:"enterprise"`
	Implemented    int     `json:"implemented"`
	Active         int     `json:"active"`
	Beta           int     `json:"beta"`
	AverageRating  float64 `json:"average_rating"`
	TotalCustomers int     `json:"total_customers"`
}

// Stats recomputes aggregate statistics over the full catalog.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.modules)}

	var ratingSum float64
	for _, m := range c.modules {
		switch m.Category {
		case CategoryCore:
			s.Core++
		case CategoryPremium:
			s.Premium++
		case CategoryEnterprise:
			s.Enterprise++
		}
		switch m.Status {
		case StatusActive:
			s.Active++
		case StatusBeta:
			s.Beta++
		case StatusDeprecated:
			// Not broken out separately; still counted in Total.
		}
		if m.Implemented {
			s.Implemented++
		}
		ratingSum += m.Rating
		s.TotalCustomers += m.Customers
	}

	if s.Total > 0 {
		s.AverageRating = ratingSum / float64(s.Total)
	}
	return s
}
