package http

import (
	"physrisk-api/config"
	"physrisk-api/internal/auth"
	"physrisk-api/internal/hazard"
	"physrisk-api/pkg/log"
)

// Handler serves every /api route. All error paths map to the fixed
// HTTPError taxonomy; panics and unclassified errors are the recovery
// middleware's job, which carries its own error reporter.
type Handler struct {
	authUC    auth.UseCase
	requester hazard.Requester
	logger    log.Logger
	cookieCfg config.CookieConfig
}

func New(authUC auth.UseCase, requester hazard.Requester, logger log.Logger, cookieCfg config.CookieConfig) *Handler {
	return &Handler{
		authUC:    authUC,
		requester: requester,
		logger:    logger,
		cookieCfg: cookieCfg,
	}
}
