package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// extractToken pulls the session token from the Authorization header, falling
// back to the session cookie. fromCookie tells the refresh interceptor which
// transport to renew.
func (m Middleware) extractToken(c *gin.Context) (token string, fromCookie bool) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		if token := strings.TrimSpace(authHeader[len(bearerPrefix):]); token != "" {
			return token, false
		}
	}

	if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil && cookie != "" {
		return cookie, true
	}

	return "", false
}
