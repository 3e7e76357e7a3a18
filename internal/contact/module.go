// Package contact provides the contact form bounded context module.
package contact

import (
	"monjoel_backend/internal/contact/handler"
	"monjoel_backend/internal/contact/repository"
	"monjoel_backend/internal/contact/service"
	apphttp "monjoel_backend/internal/http"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the contact bounded context module implementing http.Module.
type Module struct {
	publicHandler *handler.PublicHandler
	adminHandler  *handler.AdminHandler
	service       *service.Service
}

// NewModule creates and initializes the contact module with all its dependencies.
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
	return "contact"
}

// RegisterRoutes mounts contact routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	publicGroup := ctx.V1.Group("/contact")
	publicGroup.Use(ctx.IntakeRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(publicGroup)

	adminGroup := ctx.Admin.Group("/contact-submissions")
	m.adminHandler.RegisterRoutes(adminGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
