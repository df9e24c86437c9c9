package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kitchenops/entity"
	"kitchenops/repository"
	"kitchenops/service"
	"kitchenops/util"
)

// AuthenticateJWT verifies the bearer token and stores the caller's
// identity in the request context.
func AuthenticateJWT(config *entity.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := util.ValidateJWT(tokenString, config.JWTSecretKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != service.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authorize gates a route on one (resource, action) capability. Admins pass
// without a grant lookup.
func Authorize(permissionRepository *repository.PermissionRepository, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if role == service.RoleAdmin {
			c.Next()
			return
		}

		grants, err := permissionRepository.ListByUser(c.Request.Context(), c.GetUint("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !service.HasPermission(role, grants, resource, action) {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied for " + action + " on " + resource})
			c.Abort()
			return
		}
		c.Next()
	}
}
