package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"physrisk-api/config"
	configMinio "physrisk-api/config/minio"
	"physrisk-api/internal/auth/usecase"
	"physrisk-api/internal/hazard/requester/engine"
	"physrisk-api/internal/httpserver"
	"physrisk-api/pkg/discord"
	"physrisk-api/pkg/log"
	"physrisk-api/pkg/scope"
	"physrisk-api/pkg/zarr"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting physrisk API...")

	// Discord webhook for error reports (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
		} else {
			logger.Info(ctx, "Discord webhook initialized")
			defer discordClient.Close()
		}
	}

	// Hazard array store probe (optional): without a bucket the engine alone
	// decides which resources exist.
	var provider engine.StoreProvider
	if cfg.S3Enabled() {
		s3cfg := cfg.S3
		provider = func() (*zarr.Store, error) {
			client, err := configMinio.Connect(ctx, s3cfg)
			if err != nil {
				return nil, err
			}
			return zarr.New(client, s3cfg.Bucket, s3cfg.ZarrPath), nil
		}
		defer configMinio.Disconnect()
		logger.Infof(ctx, "Hazard array store probe enabled (bucket %q)", s3cfg.Bucket)
	} else {
		logger.Info(ctx, "Hazard array store probe disabled")
	}

	requester := engine.New(logger, cfg.Engine.BaseURL, cfg.Engine.Timeout, provider)
	logger.Infof(ctx, "Engine requester initialized (%s)", cfg.Engine.BaseURL)

	// Session token manager
	jwtMgr := scope.New(cfg.JWT.SecretKey)

	// Credential validation use case
	authUC := usecase.New(logger, jwtMgr, cfg.Auth.TestUserKey)

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:       cfg.HTTPServer.Host,
		Port:       cfg.HTTPServer.Port,
		Mode:       cfg.HTTPServer.Mode,
		AuthUC:     authUC,
		Requester:  requester,
		JWTManager: jwtMgr,
		Cookie:     cfg.Cookie,
		Discord:    discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
		os.Exit(1)
	}
}
