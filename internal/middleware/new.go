package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"unified-calendar/pkg/log"
	"unified-calendar/pkg/response"
)

// Middleware bundles the HTTP middleware used across route groups.
type Middleware struct {
	l      log.Logger
	apiKey string
}

func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}

// Auth checks the bearer token against the configured API key. An
// empty key disables the check, which is the default for local use.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header || token != m.apiKey {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
