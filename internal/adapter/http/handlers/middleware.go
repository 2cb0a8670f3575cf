package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
	"github.com/jsau0309/altarflowdev-sub007/pkg"
)

const churchContextKey = "church"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid API key", http.StatusUnauthorized)

// ChurchAuthMiddleware resolves the calling organization from the bearer
// API key. Handlers behind it can rely on ChurchFromContext returning a
// valid church.
func ChurchAuthMiddleware(churches interfaces.IChurchRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c.GetHeader("Authorization"))
		if key == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		church, err := churches.GetByAPIKey(c.Request.Context(), key)
		if err != nil {
			log.Printf("[auth][middleware] church lookup failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if church.ID == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(churchContextKey, church)
		c.Next()
	}
}

// ChurchFromContext returns the church resolved by ChurchAuthMiddleware.
func ChurchFromContext(c *gin.Context) (entities.Church, bool) {
	v, ok := c.Get(churchContextKey)
	if !ok {
		return entities.Church{}, false
	}
	church, ok := v.(entities.Church)
	return church, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
