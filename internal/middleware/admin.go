package middleware

import (
	"net/http"                         // HTTP status codes
	"order_system/internal/repository" // Operator lookups

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware checks the operator's role in the database on each request
func AdminOnlyMiddleware(operators repository.OperatorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID, exists := c.Get("operatorID") // Get operatorID from context
		// Check if operatorID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Fetch operator from the database
		op, err := operators.FindByID(c.Request.Context(), operatorID.(uint))
		if err != nil {
			// If operator not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// Check if operator role is admin
		if op.Role != "admin" {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
