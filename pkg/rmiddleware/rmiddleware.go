package rmiddleware

import (
	"net/http"

	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware guards the admin-only route group. The role check itself
// lives in the access package; this only wires it into the gin chain.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := middleware.GetActorFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		if d := access.CanAdministrate(actor); !d.Allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": d.Reason})
			return
		}

		c.Next()
	}
}
