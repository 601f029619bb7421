package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "auth_claims"

// RequireAuth validates the bearer token and stores the claims on the
// context. Every authenticated route goes through here; no route trusts a
// bare user-id header.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// OptionalAuth parses the bearer token when one is present but lets
// anonymous requests through. Cart routes use it so guests keep working.
func OptionalAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(claimsContextKey, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin must be chained after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetClaims returns the authenticated claims, or nil on public routes.
func GetClaims(c *gin.Context) *services.Claims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*services.Claims)
	if !ok {
		return nil
	}
	return claims
}
