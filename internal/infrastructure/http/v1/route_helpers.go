// Package v1 provides HTTP API version 1.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/infrastructure/http/v1/middleware"
)

// RouteRegistrar is implemented by handlers that wire their own routes.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RequireEntityPermissions derives the required permission from the HTTP
// method: GET needs ":read", POST ":create", PUT ":update", DELETE
// ":delete". Admins bypass permission checks in the underlying middleware.
func RequireEntityPermissions(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		action := ":read"
		switch c.Request.Method {
		case http.MethodPost:
			action = ":create"
		case http.MethodPut, http.MethodPatch:
			action = ":update"
		case http.MethodDelete:
			action = ":delete"
		}
		middleware.RequirePermission(permission + action)(c)
	}
}

// RegisterEntityRoutes mounts a handler's routes under a permission-guarded
// group.
//
// Usage:
//
//	repo := catalog_repo.NewClientRepo()
//	service := client.NewService(repo, cfg.Numerator, txManager)
//	handler := handlers.NewClientHandler(baseHandler, service, vehicleService)
//	RegisterEntityRoutes(protected.Group("/clientes"), handler, "catalog:client")
func RegisterEntityRoutes(group *gin.RouterGroup, handler RouteRegistrar, permission string) {
	group.Use(RequireEntityPermissions(permission))
	handler.RegisterRoutes(group)
}
