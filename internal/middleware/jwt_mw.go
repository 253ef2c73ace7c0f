package middleware

import (
	"errors"
	"net/http"
	"strings"

	"film_api/internal/model"
	"film_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthIdentityKey is the gin context key holding the verified model.Identity
const AuthIdentityKey = "authIdentity"

// JWTAuthMiddleware creates a middleware for JWT authentication. A missing
// credential is 401; a presented but invalid or expired credential is 403.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		scheme, tokenString, _ := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}
		if !strings.EqualFold(scheme, "bearer") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AuthIdentityKey, claims.Identity())

		c.Next()
	}
}

// IdentityFrom returns the identity attached by JWTAuthMiddleware
func IdentityFrom(c *gin.Context) (model.Identity, bool) {
	val, exists := c.Get(AuthIdentityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := val.(model.Identity)
	return identity, ok
}
