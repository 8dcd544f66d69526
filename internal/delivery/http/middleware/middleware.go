package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	utils "local-market/pkg"
)

// AuthRequired verifies the x-auth-token header and puts the caller's
// identity into the Gin context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-auth-token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

func RoleAllowed(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userTypeAny, exists := c.Get("user_type")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "role missing in context"})
			c.Abort()
			return
		}

		userType, ok := userTypeAny.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid role type"})
			c.Abort()
			return
		}

		for _, t := range allowedTypes {
			if strings.EqualFold(userType, t) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		c.Abort()
	}
}

// CORS mirrors the permissive development setup of the frontend dev server.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, x-auth-token")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
