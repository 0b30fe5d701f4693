package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"physrisk-api/config"
	"physrisk-api/internal/auth"
	"physrisk-api/internal/hazard"
	"physrisk-api/pkg/discord"
	"physrisk-api/pkg/log"
	"physrisk-api/pkg/scope"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	authUC    auth.UseCase
	requester hazard.Requester

	jwtMgr    scope.Manager
	cookieCfg config.CookieConfig

	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	AuthUC    auth.UseCase
	Requester hazard.Requester

	JWTManager scope.Manager
	Cookie     config.CookieConfig

	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to serve.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:    gin.New(),
		logger: logger,
		host:   cfg.Host,
		port:   cfg.Port,

		authUC:    cfg.AuthUC,
		requester: cfg.Requester,

		jwtMgr:    cfg.JWTManager,
		cookieCfg: cfg.Cookie,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	if srv.requester == nil {
		return errors.New("requester is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	return nil
}
