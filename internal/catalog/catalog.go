package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidCatalog is wrapped by every validation failure from New.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Catalog is an immutable, validated set of module definitions. A Catalog is
// safe for concurrent use by any number of goroutines: every method is a pure
// read over data fixed at construction time.
type Catalog struct {
	modules []Module
	byID    map[string]int // id -> index in modules, preserving catalog order
}

// New validates the given definitions and builds a Catalog from them.
// Malformed data (duplicate ids, out-of-range ratings, negative prices,
// unresolvable or cyclic dependencies) is rejected here so that every
// downstream query can be total.
func New(defs []Module) (*Catalog, error) {
	byID := make(map[string]int, len(defs))

	for i, m := range defs {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: module at index %d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate module id %q", ErrInvalidCatalog, m.ID)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("%w: module %q has empty name", ErrInvalidCatalog, m.ID)
		}
		if !validCategory(m.Category) {
			return nil, fmt.Errorf("%w: module %q has unknown category %q", ErrInvalidCatalog, m.ID, m.Category)
		}
		if !validTier(m.Tier) {
			return nil, fmt.Errorf("%w: module %q has unknown tier %q", ErrInvalidCatalog, m.ID, m.Tier)
		}
		if !validStatus(m.Status) {
			return nil, fmt.Errorf("%w: module %q has unknown status %q", ErrInvalidCatalog, m.ID, m.Status)
		}
		if !validPricingModel(m.Pricing.Model) {
			return nil, fmt.Errorf("%w: module %q has unknown pricing model %q", ErrInvalidCatalog, m.ID, m.Pricing.Model)
		}
		if m.Pricing.BasePrice < 0 || m.Pricing.PerUser < 0 || m.Pricing.PerBuilding < 0 || m.Pricing.SetupFee < 0 {
			return nil, fmt.Errorf("%w: module %q has a negative price component", ErrInvalidCatalog, m.ID)
		}
		if m.Pricing.TrialDays < 0 {
			return nil, fmt.Errorf("%w: module %q has negative trial days", ErrInvalidCatalog, m.ID)
		}
		if m.Rating < 0 || m.Rating > 5 {
			return nil, fmt.Errorf("%w: module %q rating %.2f out of range [0,5]", ErrInvalidCatalog, m.ID, m.Rating)
		}
		byID[m.ID] = i
	}

	// Dependencies must reference existing modules.
	for _, m := range defs {
		for _, dep := range m.Dependencies {
			if _, ok := byID[dep]; !ok {
				return nil, fmt.Errorf("%w: module %q depends on unknown module %q", ErrInvalidCatalog, m.ID, dep)
			}
			if dep == m.ID {
				return nil, fmt.Errorf("%w: module %q depends on itself", ErrInvalidCatalog, m.ID)
			}
		}
	}

	if cycle := findCycle(defs, byID); cycle != "" {
		return nil, fmt.Errorf("%w: dependency cycle through module %q", ErrInvalidCatalog, cycle)
	}

	c := &Catalog{
		modules: slices.Clone(defs),
		byID:    byID,
	}
	return c, nil
}

// findCycle runs an iterative three-color DFS over the dependency graph and
// returns the id of a module on a cycle, or "" when the graph is a DAG.
func findCycle(defs []Module, byID map[string]int) string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS path
		black = 2 // fully explored
	)
	color := make([]int, len(defs))

	var visit func(i int) string
	visit = func(i int) string {
		color[i] = gray
		for _, dep := range defs[i].Dependencies {
			j := byID[dep]
			switch color[j] {
			case gray:
				return defs[j].ID
			case white:
				if id := visit(j); id != "" {
					return id
				}
			}
		}
		color[i] = black
		return ""
	}

	for i := range defs {
		if color[i] == white {
			if id := visit(i); id != "" {
				return id
			}
		}
	}
	return ""
}

// Len returns the number of modules in the catalog.
func (c *Catalog) Len() int { return len(c.modules) }

// All returns every module in catalog order.
func (c *Catalog) All() []Module {
	return slices.Clone(c.modules)
}

// ByID looks up a module by id. Unknown or empty ids report ok=false.
func (c *Catalog) ByID(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i], true
}

func (c *Catalog) filter(keep func(Module) bool) []Module {
	var out []Module
	for _, m := range c.modules {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// Core returns all modules bundled with every subscription.
func (c *Catalog) Core() []Module {
	return c.filter(func(m Module) bool { return m.Core })
}

// Visible returns all modules shown in the catalog UI.
func (c *Catalog) Visible() []Module {
	return c.filter(func(m Module) bool { return m.Visible })
}

// Enabled returns all modules available for activation.
func (c *Catalog) Enabled() []Module {
	return c.filter(func(m Module) bool { return m.Enabled })
}

// Implemented returns all modules whose functionality has shipped.
func (c *Catalog) Implemented() []Module {
	return c.filter(func(m Module) bool { return m.Implemented })
}

// ByCategory returns all modules in the given category. An unknown category
// yields an empty result, never an error.
func (c *Catalog) ByCategory(cat Category) []Module {
	return c.filter(func(m Module) bool { return m.Category == cat })
}

// ByTier returns all modules in the given subscription tier.
func (c *Catalog) ByTier(tier Tier) []Module {
	return c.filter(func(m Module) bool { return m.Tier == tier })
}

// ByStatus returns all modules with the given release status.
func (c *Catalog) ByStatus(status Status) []Module {
	return c.filter(func(m Module) bool { return m.Status == status })
}

// Search matches the query case-insensitively against module name, description
// and feature list. An empty query returns the full catalog. A whitespace-only
// query, like any query matching nothing, returns an empty result.
func (c *Catalog) Search(query string) []Module {
	if query == "" {
		return c.All()
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	return c.filter(func(m Module) bool {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			return true
		}
		for _, f := range m.Features {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	})
}

// Popular returns the top n modules by popularity score, descending. Ties keep
// catalog order. When n exceeds the catalog size the full catalog is returned;
// n <= 0 yields an empty result.
func (c *Catalog) Popular(n int) []Module {
	if n <= 0 {
		return nil
	}

	sorted := slices.Clone(c.modules)
	slices.SortStableFunc(sorted, func(a, b Module) int {
		return b.Popularity - a.Popularity
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// HighRated returns all modules with rating >= min.
func (c *Catalog) HighRated(min float64) []Module {
	return c.filter(func(m Module) bool { return m.Rating >= min })
}
