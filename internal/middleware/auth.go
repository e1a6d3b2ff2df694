package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/user"
	"github.com/kartikp-10/weekpulse/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserIDKey = "auth_user_id"
	AuthActorKey  = "auth_actor"
)

// AuthMiddleware parses the bearer token and resolves it to a live user row
// before any handler runs. The user's stored role wins over the token claim,
// so demotions take effect without waiting for token expiry.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateToken(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var u user.User
		if err := db.First(&u, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			return
		}

		c.Set(AuthUserIDKey, u.ID)
		c.Set(AuthActorKey, access.Actor{ID: u.ID, Role: access.Role(u.Role)})
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	uid, ok := userID.(uint)
	if !ok {
		return 0, errors.New("user ID in context has unexpected type")
	}
	return uid, nil
}

// GetActorFromContext extracts the authenticated actor (id + role).
func GetActorFromContext(c *gin.Context) (access.Actor, error) {
	v, exists := c.Get(AuthActorKey)
	if !exists {
		return access.Actor{}, errors.New("actor not found in context")
	}
	actor, ok := v.(access.Actor)
	if !ok {
		return access.Actor{}, errors.New("actor in context has unexpected type")
	}
	return actor, nil
}
