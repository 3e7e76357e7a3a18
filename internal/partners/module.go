// Package partners provides the artisan applications bounded context module.
package partners

import (
	apphttp "monjoel_backend/internal/http"
	"monjoel_backend/internal/partners/handler"
	"monjoel_backend/internal/partners/repository"
	"monjoel_backend/internal/partners/service"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the partners bounded context module implementing http.Module.
type Module struct {
	publicHandler *handler.PublicHandler
	adminHandler  *handler.AdminHandler
	service       *service.Service
}

// NewModule creates and initializes the partners module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus)

	return &Module{
		publicHandler: handler.NewPublicHandler(svc, val),
		adminHandler:  handler.NewAdminHandler(svc, val),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "partners"
}

// RegisterRoutes mounts partner routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	publicGroup := ctx.V1.Group("/artisan-application")
	publicGroup.Use(ctx.IntakeRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(publicGroup)

	adminGroup := ctx.Admin.Group("/artisan-applications")
	m.adminHandler.RegisterRoutes(adminGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
