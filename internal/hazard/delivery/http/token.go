package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"physrisk-api/internal/auth"
	"physrisk-api/pkg/errors"
	"physrisk-api/pkg/response"
	"physrisk-api/pkg/scope"
)

type issueTokenReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var issueTokenErrMap = response.ErrorMapping{
	auth.ErrWrongCredentials:    errors.NewWrongCredentialsHTTPError(),
	auth.ErrServerMisconfigured: errors.NewServerConfigHTTPError(),
}

// IssueToken exchanges the credential pair for a session token. The token is
// returned in the body and mirrored into the session cookie so browser map
// clients need no Authorization header handling.
func (h *Handler) IssueToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req issueTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "internal.hazard.delivery.http.IssueToken: malformed body: %v", err)
		response.HttpError(c, errors.NewBadRequestHTTPError())
		return
	}

	out, err := h.authUC.IssueToken(ctx, auth.TokenInput{Email: req.Email, Password: req.Password})
	if err != nil {
		response.ErrorWithMap(c, err, issueTokenErrMap)
		return
	}

	h.setSessionCookie(c, out.AccessToken, int(scope.TokenExpirationDuration.Seconds()))
	c.JSON(http.StatusOK, gin.H{"access_token": out.AccessToken})
}
