// Package diagnostic provides the diagnostic intake bounded context module.
package diagnostic

import (
	"monjoel_backend/internal/adapters/storage"
	"monjoel_backend/internal/diagnostic/handler"
	"monjoel_backend/internal/diagnostic/repository"
	"monjoel_backend/internal/diagnostic/service"
	apphttp "monjoel_backend/internal/http"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the diagnostic bounded context module implementing http.Module.
type Module struct {
	publicHandler *handler.PublicHandler
	adminHandler  *handler.AdminHandler
	service       *service.Service
}

// NewModule creates and initializes the diagnostic module with all its dependencies.
func NewModule(
	pool *pgxpool.Pool,
	engine *pricing.Engine,
	eventBus events.Bus,
	objectStore storage.ObjectStore,
	photoBucket string,
	val *validator.Validator,
) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, service.NewTableClassifier(), engine, eventBus, objectStore, photoBucket)

	return &Module{
		publicHandler: handler.NewPublicHandler(svc, val),
		adminHandler:  handler.NewAdminHandler(svc, val),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "diagnostic"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts diagnostic routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	publicGroup := ctx.V1.Group("/diagnostic")
	publicGroup.Use(ctx.IntakeRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(publicGroup)

	adminGroup := ctx.Admin.Group("/requests")
	m.adminHandler.RegisterRoutes(adminGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
