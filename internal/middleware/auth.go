package middleware

import (
	"physrisk-api/pkg/response"
	"physrisk-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth returns a middleware that requires a valid session token. It extracts
// the token from the Authorization header or the session cookie, verifies it
// and sets the payload in context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := m.extractToken(c)
		if token == "" {
			m.logger.Warnf(c.Request.Context(), "Missing session token | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.logger.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetDataAccessToContext(ctx, payload.DataAccess)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AccessTier returns a middleware that resolves the caller's data-access tier
// without requiring a token. An absent, expired or invalid token leaves the
// request anonymous at the default tier; data routes stay reachable either way.
func (m Middleware) AccessTier() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			if scope.IsExpired(err) {
				m.logger.Infof(c.Request.Context(), "Session token expired, continuing anonymously | Path: %s", c.Request.URL.Path)
			} else {
				m.logger.Warnf(c.Request.Context(), "Token verification failed, continuing anonymously: %v | Path: %s", err, c.Request.URL.Path)
			}
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetDataAccessToContext(ctx, payload.DataAccess)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
