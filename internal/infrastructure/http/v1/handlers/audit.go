package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/infrastructure/storage/postgres"
)

// AuditHandler exposes the change history of audited entities.
type AuditHandler struct {
	*BaseHandler
	audit *postgres.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, audit *postgres.AuditService) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		audit:       audit,
	}
}

// History handles GET /auditoria/:entidad/:id.
func (h *AuditHandler) History(c *gin.Context) {
	ctx := c.Request.Context()

	entityType := c.Param("entidad")
	if entityType == "" {
		h.Error(c, apperror.NewValidation("entity type is required"))
		return
	}

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid entity id"))
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	entries, err := h.audit.GetEntityHistory(ctx, entityType, entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		items = append(items, gin.H{
			"id":         e.ID,
			"entidad":    e.EntityType,
			"id_entidad": e.EntityID,
			"accion":     string(e.Action),
			"usuario":    e.UserID,
			"email":      e.UserEmail,
			"cambios":    e.Changes,
			"fecha":      e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "totalCount": len(items)})
}

// RegisterRoutes registers audit endpoints on the given router group.
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:entidad/:id", h.History)
}
