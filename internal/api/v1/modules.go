package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bhv360/platform/internal/catalog"
)

type ListModulesInput struct {
	Category  string  `query:"category" enum:"core,premium,enterprise" doc:"Filter by category"`
	Tier      string  `query:"tier" enum:"starter,professional,enterprise" doc:"Filter by tier"`
	Status    string  `query:"status" enum:"active,beta,deprecated" doc:"Filter by release status"`
	Query     string  `query:"q" maxLength:"255" doc:"Free-text search over name, description, and features"`
	MinRating float64 `query:"min_rating" minimum:"0" maximum:"5" doc:"Only modules rated at least this"`
	All       bool    `query:"all" doc:"Include hidden modules (admin tooling)"`
}

type ListModulesOutput struct {
	Body []catalog.Module
}

type PopularModulesInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"5" doc:"Max results"`
}

type PopularModulesOutput struct {
	Body []catalog.Module
}

type ModuleStatsOutput struct {
	Body catalog.Stats
}

type GetModuleInput struct {
	ModuleID string `path:"moduleID" maxLength:"63" doc:"Module ID"`
}

type GetModuleOutput struct {
	Body catalog.Module
}

type ModulePriceInput struct {
	ModuleID      string `path:"moduleID" maxLength:"63" doc:"Module ID"`
	UserCount     int    `query:"users" minimum:"0" default:"0" doc:"Number of users"`
	BuildingCount int    `query:"buildings" minimum:"0" default:"0" doc:"Number of buildings"`
}

type ModulePriceOutput struct {
	Body struct {
		ModuleID     string  `json:"module_id"`
		MonthlyPrice float64 `json:"monthly_price"`
		Model        string  `json:"model"`
		SetupFee     float64 `json:"setup_fee"`
		FreeTrial    bool    `json:"free_trial"`
		TrialDays    int     `json:"trial_days"`
	}
}

func RegisterModuleRoutes(api huma.API, cat *catalog.Catalog) {
	huma.Register(api, huma.Operation{
		OperationID: "list-modules",
		Method:      http.MethodGet,
		Path:        "/modules",
		Summary:     "List catalog modules",
		Description: "Returns visible modules by default. Filters combine with AND semantics.",
		Tags:        []string{"Modules"},
	}, func(_ context.Context, input *ListModulesInput) (*ListModulesOutput, error) {
		modules := cat.All()
		if input.Query != "" {
			modules = cat.Search(input.Query)
		}

		filtered := make([]catalog.Module, 0, len(modules))
		for _, m := range modules {
			if !input.All && !m.Visible {
				continue
			}
			if input.Category != "" && m.Category != catalog.Category(input.Category) {
				continue
			}
			if input.Tier != "" && m.Tier != catalog.Tier(input.Tier) {
				continue
			}
			if input.Status != "" && m.Status != catalog.Status(input.Status) {
				continue
			}
			if m.Rating < input.MinRating {
				continue
			}
			filtered = append(filtered, m)
		}

		return &ListModulesOutput{Body: filtered}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "popular-modules",
		Method:      http.MethodGet,
		Path:        "/modules/popular",
		Summary:     "List the most popular modules",
		Tags:        []string{"Modules"},
	}, func(_ context.Context, input *PopularModulesInput) (*PopularModulesOutput, error) {
		return &PopularModulesOutput{Body: cat.Popular(input.Limit)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "module-stats",
		Method:      http.MethodGet,
		Path:        "/modules/stats",
		Summary:     "Aggregate catalog statistics",
		Tags:        []string{"Modules"},
	}, func(_ context.Context, _ *struct{}) (*ModuleStatsOutput, error) {
		return &ModuleStatsOutput{Body: cat.Stats()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-module",
		Method:      http.MethodGet,
		Path:        "/modules/{moduleID}",
		Summary:     "Get a module by ID",
		Tags:        []string{"Modules"},
	}, func(_ context.Context, input *GetModuleInput) (*GetModuleOutput, error) {
		m, ok := cat.ByID(input.ModuleID)
		if !ok {
			return nil, huma.Error404NotFound("module not found")
		}

		return &GetModuleOutput{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "module-price",
		Method:      http.MethodGet,
		Path:        "/modules/{moduleID}/price",
		Summary:     "Price a module for a given organization size",
		Tags:        []string{"Modules"},
	}, func(_ context.Context, input *ModulePriceInput) (*ModulePriceOutput, error) {
		m, ok := cat.ByID(input.ModuleID)
		if !ok {
			return nil, huma.Error404NotFound("module not found")
		}

		quote := catalog.Price(m, input.UserCount, input.BuildingCount)

		out := &ModulePriceOutput{}
		out.Body.ModuleID = m.ID
		out.Body.MonthlyPrice = quote.Price
		out.Body.Model = quote.Model
		out.Body.SetupFee = m.Pricing.SetupFee
		out.Body.FreeTrial = m.Pricing.FreeTrial
		out.Body.TrialDays = m.Pricing.TrialDays
		return out, nil
	})
}
