package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/forms"
)

// FormsHandler serves form layout metadata for clients.
type FormsHandler struct {
	*BaseHandler
	registry *forms.Registry
}

// NewFormsHandler creates a new forms metadata handler.
func NewFormsHandler(base *BaseHandler, registry *forms.Registry) *FormsHandler {
	return &FormsHandler{BaseHandler: base, registry: registry}
}

// List handles GET /meta/forms.
func (h *FormsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.registry.List()})
}

// Get handles GET /meta/forms/:entity.
func (h *FormsHandler) Get(c *gin.Context) {
	entity := c.Param("entity")

	form, ok := h.registry.Get(entity)
	if !ok {
		h.Error(c, apperror.NewNotFound("form", entity))
		return
	}

	c.JSON(http.StatusOK, form)
}

// RegisterRoutes registers form metadata routes.
func (h *FormsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/forms", h.List)
	rg.GET("/forms/:entity", h.Get)
}
