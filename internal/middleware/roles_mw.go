package middleware

import (
	"net/http"
	"slices"

	"film_api/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware lets the request through only when the authenticated
// role exactly matches one of allowedRoles. It must run after JWTAuthMiddleware.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !slices.Contains(allowedRoles, identity.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware guards update and delete routes
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
