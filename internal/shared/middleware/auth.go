package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/pkg/jwt"
)

const identityKey = "identity"

// Auth validates the bearer token and stores the caller's identity in
// the gin context. Every failure answers 403: write endpoints respond
// Forbidden to missing credentials, matching the existing API surface.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			forbid(c, "Authentication credentials were not provided.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			forbid(c, "Invalid authorization header format.")
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			forbid(c, "Invalid token.")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			forbid(c, "Invalid token.")
			return
		}

		c.Set(identityKey, authz.Identity{
			ID:       userID,
			Username: claims.Username,
			Role:     authz.Role(claims.Role),
		})

		c.Next()
	}
}

// RequireRole gates a route group on one of the given roles.
// Must run after Auth.
func RequireRole(roles ...authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		forbid(c, "You do not have permission to perform this action.")
	}
}

// CurrentIdentity returns the caller's identity, or authz.Anonymous
// on routes without the Auth middleware.
func CurrentIdentity(c *gin.Context) authz.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(authz.Identity); ok {
			return identity
		}
	}
	return authz.Anonymous
}

func forbid(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
	c.Abort()
}
