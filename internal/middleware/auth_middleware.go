package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

// AuthServiceMiddleware makes the auth service available to handlers.
func AuthServiceMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("auth_service", auth)
		c.Next()
	}
}

func GetAuthService(c *gin.Context) *services.AuthService {
	auth, exists := c.Get("auth_service")
	if !exists {
		return nil
	}
	return auth.(*services.AuthService)
}

// JWTAuthMiddleware gates a route group on a valid bearer token and
// exposes the identity claims to downstream handlers.
func JWTAuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing bearer token.")
			c.Abort()
			return
		}

		claims, err := auth.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole restricts a group to the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, _ := c.Get("role")
		role, _ := v.(string)
		if _, ok := allowed[role]; !ok {
			helpers.RespondWithError(c, http.StatusForbidden, "Insufficient permissions.")
			c.Abort()
			return
		}
		c.Next()
	}
}
