package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"

	bearerPrefix = "Bearer "
)

// Auth is the request-authentication gate. It requires an
// "Authorization: Bearer <token>" header; anything else is rejected
// before the token service is ever invoked. Every request is verified
// independently, no caching of results.
func Auth(tokens application.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			resp := response.Error[any](c, http.StatusUnauthorized, "access token required", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		token := header[len(bearerPrefix):]
		userID, email, err := tokens.Verify(token)
		if err != nil {
			// Generic on purpose: bad signature, expiry and malformed
			// tokens are indistinguishable to the caller.
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		c.Set(CtxUserIDKey, userID)
		c.Set(CtxUserEmailKey, email)
		c.Next()
	}
}
