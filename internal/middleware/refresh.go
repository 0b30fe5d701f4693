package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"physrisk-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// RefreshHorizon is how close to expiry a token must be before the response
// interceptor mints a replacement.
const RefreshHorizon = 30 * time.Minute

// accessTokenField is the response body field carrying the refreshed token.
const accessTokenField = "access_token"

// bufferedWriter captures the handler's body so the refresh interceptor can
// rewrite it before anything reaches the wire.
type bufferedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// RefreshSession returns a middleware that slides the session window: when a
// valid token is within RefreshHorizon of expiry, a replacement with the same
// identity and tier is minted and injected into JSON object responses. The
// interceptor never fails the response; an expired or malformed token just
// passes through untouched.
func (m Middleware) RefreshSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, fromCookie := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		writer := &bufferedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()
		c.Writer = writer.ResponseWriter

		body := writer.body.Bytes()
		if fresh := m.refreshedToken(c, token); fresh != "" {
			body = injectToken(c, body, fresh)
			if fromCookie {
				m.setSessionCookie(c, fresh)
			}
		}

		if len(body) > 0 {
			if _, err := c.Writer.Write(body); err != nil {
				m.logger.Warnf(c.Request.Context(), "Failed to flush buffered response: %v | Path: %s", err, c.Request.URL.Path)
			}
		}
	}
}

// refreshedToken returns a replacement token when the presented one is valid
// and inside the refresh horizon, and "" in every other case.
func (m Middleware) refreshedToken(c *gin.Context, token string) string {
	ctx := c.Request.Context()

	payload, err := m.jwtManager.Verify(token)
	if err != nil {
		if scope.IsExpired(err) {
			m.logger.Infof(ctx, "Session token already expired, skipping refresh | Path: %s", c.Request.URL.Path)
		} else {
			m.logger.Warnf(ctx, "Skipping refresh for unverifiable token: %v | Path: %s", err, c.Request.URL.Path)
		}
		return ""
	}

	if payload.ExpiresAt == nil || time.Until(payload.ExpiresAt.Time) > RefreshHorizon {
		return ""
	}

	fresh, err := m.jwtManager.CreateToken(payload.Subject, payload.DataAccess)
	if err != nil {
		m.logger.Errorf(ctx, "Failed to mint refreshed token: %v | Path: %s", err, c.Request.URL.Path)
		return ""
	}
	return fresh
}

// injectToken adds the refreshed token to a JSON object body. Every response
// counts, error bodies included: a client polling a route that keeps
// answering 404 still has its session window slid. Non-JSON and non-object
// bodies (images, arrays, plain text) are returned unchanged.
func injectToken(c *gin.Context, body []byte, token string) []byte {
	if ct := c.Writer.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return body
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return body
	}

	payload[accessTokenField] = token
	rewritten, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return rewritten
}

func (m Middleware) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(parseSameSite(m.cookieConfig.SameSite))
	c.SetCookie(m.cookieConfig.Name, token, int(scope.TokenExpirationDuration.Seconds()),
		"/", m.cookieConfig.Domain, m.cookieConfig.Secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
