package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. It is loaded once at startup
// and passed explicitly into the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	ServerPort    int    `env:"PORT" envDefault:"8080"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"./portfolio.db"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	FrontendURL   string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// JWTSecret signs session tokens. Required: there is no safe default.
	JWTSecret string `env:"JWT_SECRET,required"`

	// Seed admin, provisioned on first start if the admins table is empty.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminGithub   string `env:"ADMIN_GITHUB_USERNAME"`

	GithubToken    string `env:"GITHUB_TOKEN"`
	GithubSyncCron string `env:"GITHUB_SYNC_CRON" envDefault:"0 */6 * * *"`

	UnsplashAccessKey string `env:"UNSPLASH_ACCESS_KEY"`

	SMTPHost    string `env:"SMTP_HOST"`
	SMTPPort    int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser    string `env:"SMTP_USER"`
	SMTPPass    string `env:"SMTP_PASS"`
	NotifyEmail string `env:"NOTIFY_EMAIL"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
