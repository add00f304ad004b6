package middleware

import (
	"github.com/gin-gonic/gin"

	"taller/internal/core/tx"
	"taller/internal/infrastructure/storage/postgres"
)

// Database middleware injects the transaction manager into the request context.
// This middleware MUST run before any handler that touches the database:
// repositories resolve their TxManager from context, not from struct fields.
func Database(txManager *postgres.TxManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := tx.WithManager(c.Request.Context(), txManager)
		c.Request = c.Request.WithContext(ctx)

		c.Set("tx_manager", txManager)

		c.Next()
	}
}

// GetTxManagerFromContext retrieves TxManager from Gin context.
// Returns nil if not found. Use this in handlers.
func GetTxManagerFromContext(c *gin.Context) *postgres.TxManager {
	if v, exists := c.Get("tx_manager"); exists {
		if txm, ok := v.(*postgres.TxManager); ok {
			return txm
		}
	}
	return nil
}
