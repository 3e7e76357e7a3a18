// Package settings provides the site-settings bounded context module.
package settings

import (
	apphttp "monjoel_backend/internal/http"
	"monjoel_backend/internal/settings/handler"
	"monjoel_backend/internal/settings/repository"
	"monjoel_backend/internal/settings/service"
	"monjoel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the settings bounded context module implementing http.Module.
type Module struct {
	adminHandler  *handler.AdminHandler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates and initializes the settings module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		adminHandler:  handler.NewAdminHandler(svc, val),
		publicHandler: handler.NewPublicHandler(svc),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "settings"
}

// RegisterRoutes mounts settings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	publicGroup := ctx.V1.Group("/settings")
	m.publicHandler.RegisterRoutes(publicGroup)

	adminGroup := ctx.Admin.Group("/settings")
	m.adminHandler.RegisterRoutes(adminGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
