// Package pricebook provides the pricebook bounded context module.
package pricebook

import (
	apphttp "monjoel_backend/internal/http"
	"monjoel_backend/internal/pricebook/handler"
	"monjoel_backend/internal/pricebook/repository"
	"monjoel_backend/internal/pricebook/service"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/platform/logger"
	"monjoel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the pricebook bounded context module implementing http.Module.
type Module struct {
	adminHandler  *handler.AdminHandler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates and initializes the pricebook module with all its dependencies.
func NewModule(pool *pgxpool.Pool, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	catalog := service.NewDBCatalog(repo, log)
	svc := service.New(repo, catalog)

	return &Module{
		adminHandler:  handler.NewAdminHandler(svc, val),
		publicHandler: handler.NewPublicHandler(svc),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "pricebook"
}

// Catalog returns the provider consumed by the pricing engine.
func (m *Module) Catalog() pricing.CatalogProvider {
	return m.service.Catalog()
}

// RegisterRoutes mounts pricebook routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	publicGroup := ctx.V1.Group("/prices")
	m.publicHandler.RegisterRoutes(publicGroup)

	adminGroup := ctx.Admin.Group("/pricebook")
	m.adminHandler.RegisterRoutes(adminGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
