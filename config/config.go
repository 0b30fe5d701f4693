package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration.
type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Authentication & Security Configuration
	JWT    JWTConfig
	Auth   AuthConfig
	Cookie CookieConfig

	// Backend Configuration
	Engine EngineConfig
	S3     S3Config

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8081"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// JWTConfig is the configuration for session token signing.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// AuthConfig is the configuration for the provisioned test credential.
// TestUserKey may be a plaintext secret or a bcrypt digest. An empty value is
// not a startup error: token issuance reports a server misconfiguration at
// request time, matching the deployed behavior.
type AuthConfig struct {
	TestUserKey string `env:"OSC_TEST_USER_KEY"`
}

// CookieConfig is the configuration for the session cookie used as a bearer
// fallback when no Authorization header is present.
type CookieConfig struct {
	Name     string `env:"COOKIE_NAME" envDefault:"physrisk_access_token"`
	Domain   string `env:"COOKIE_DOMAIN"`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"true"`
	SameSite string `env:"COOKIE_SAMESITE" envDefault:"Lax"`
}

// EngineConfig is the configuration for the hazard computation engine.
type EngineConfig struct {
	BaseURL string        `env:"ENGINE_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"ENGINE_TIMEOUT" envDefault:"120s"`
}

// S3Config is the configuration for the object store holding the hazard
// array store. All fields empty disables the store probe.
type S3Config struct {
	Endpoint  string `env:"OSC_S3_ENDPOINT" envDefault:"s3.amazonaws.com"`
	AccessKey string `env:"OSC_S3_ACCESS_KEY"`
	SecretKey string `env:"OSC_S3_SECRET_KEY"`
	Bucket    string `env:"OSC_S3_BUCKET"`
	UseSSL    bool   `env:"OSC_S3_USE_SSL" envDefault:"true"`
	ZarrPath  string `env:"OSC_S3_ZARR_PATH" envDefault:"hazard/hazard.zarr"`
}

// DiscordConfig is the configuration for Discord webhook error reports.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	// Fail closed: never sign tokens with an empty or trivially short secret.
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Engine.BaseURL == "" {
		return fmt.Errorf("ENGINE_URL is required")
	}
	if cfg.Cookie.Name == "" {
		return fmt.Errorf("COOKIE_NAME is required")
	}
	return nil
}

// S3Enabled reports whether the array store probe is configured.
func (c *Config) S3Enabled() bool {
	return c.S3.Bucket != ""
}
