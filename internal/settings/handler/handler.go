package handler

import (
	"net/http"

	"monjoel_backend/internal/settings/service"
	"monjoel_backend/internal/settings/transport"
	"monjoel_backend/platform/httpkit"
	"monjoel_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// AdminHandler handles back-office settings management.
type AdminHandler struct {
	svc *service.Service
	val *validator.Validator
}

// NewAdminHandler creates the admin settings handler.
func NewAdminHandler(svc *service.Service, val *validator.Validator) *AdminHandler {
	return &AdminHandler{svc: svc, val: val}
}

// RegisterRoutes registers the admin settings routes.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetAll)
	rg.PUT("", h.BulkUpdate)
	rg.POST("/init", h.Initialize)
}

func (h *AdminHandler) GetAll(c *gin.Context) {
	result, err := h.svc.GetAll(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *AdminHandler) BulkUpdate(c *gin.Context) {
	var req transport.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if httpkit.HandleError(c, h.svc.BulkUpdate(c.Request.Context(), req)) {
		return
	}
	httpkit.OK(c, gin.H{"message": "Paramètres mis à jour avec succès"})
}

func (h *AdminHandler) Initialize(c *gin.Context) {
	if httpkit.HandleError(c, h.svc.Initialize(c.Request.Context())) {
		return
	}
	httpkit.OK(c, gin.H{"message": "Paramètres initialisés avec succès"})
}

// PublicHandler exposes the public subset of settings.
type PublicHandler struct {
	svc *service.Service
}

// NewPublicHandler creates the public settings handler.
func NewPublicHandler(svc *service.Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// RegisterRoutes registers the public settings routes.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetPublic)
}

func (h *PublicHandler) GetPublic(c *gin.Context) {
	result, err := h.svc.GetPublic(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
