package server

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/bhv360/platform/internal/activation"
	v1 "github.com/bhv360/platform/internal/api/v1"
	"github.com/bhv360/platform/internal/api/ws"
	"github.com/bhv360/platform/internal/auth"
	"github.com/bhv360/platform/internal/store/postgres"
)

func registerAuthRoutes(api huma.API, authSvc *auth.Service) {
	v1.RegisterAuthRoutes(api, authSvc)
}

func registerAPIRoutes(api huma.API, store *postgres.Store, activationSvc *activation.Service) {
	v1.RegisterTenantRoutes(api, store)
	v1.RegisterModuleRoutes(api, activationSvc.Catalog())
	v1.RegisterActivationRoutes(api, activationSvc)
}

func registerWSRoutes(r chi.Router, hub *ws.Hub) {
	r.Get("/activations", hub.ServeActivations)
}
