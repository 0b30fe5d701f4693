package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"physrisk-api/pkg/response"
	"physrisk-api/pkg/scope"
)

// Reset drops the cached backend state so repointed buckets and refreshed
// arrays are picked up without a restart.
func (h *Handler) Reset(c *gin.Context) {
	h.requester.ResetCache(c.Request.Context())
	c.String(http.StatusOK, "Reset successful")
}

// Logout clears the session cookie. Tokens are stateless, so a header-borne
// token stays valid until expiry; the client is expected to discard it.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"msg": "logout successful"})
}

// Profile returns the identity of the authenticated session.
func (h *Handler) Profile(c *gin.Context) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": payload.Subject})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cookieCfg.SameSite))
	c.SetCookie(h.cookieCfg.Name, token, maxAge, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
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
