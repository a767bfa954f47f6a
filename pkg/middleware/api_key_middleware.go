package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hookify/pkg/utils"
)

// ApiKeyResolver maps a raw API key to the owning account id. Implemented by
// the account service; kept as an interface so the middleware stays free of
// storage concerns.
type ApiKeyResolver interface {
	ResolveApiKey(ctx context.Context, key string) (uuid.UUID, error)
}

func ApiKeyMiddleware(resolver ApiKeyResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			utils.RespondError(c, http.StatusUnauthorized, "X-API-Key header missing")
			c.Abort()
			return
		}

		accountID, err := resolver.ResolveApiKey(c, key)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid API key")
			c.Abort()
			return
		}

		c.Set("account_id", accountID.String())
		c.Next()
	}
}
