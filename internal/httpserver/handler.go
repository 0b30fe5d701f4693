package httpserver

import (
	hazardHTTP "physrisk-api/internal/hazard/delivery/http"
	"physrisk-api/internal/middleware"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtMgr, srv.cookieCfg)

	// Every API route resolves the access tier and goes through the session
	// refresh interceptor. Hard auth is per-route, added in RegisterRoutes.
	api := srv.gin.Group(Api, mw.AccessTier(), mw.RefreshSession())

	handler := hazardHTTP.New(srv.authUC, srv.requester, srv.logger, srv.cookieCfg)
	handler.RegisterRoutes(api, mw)

	return nil
}
