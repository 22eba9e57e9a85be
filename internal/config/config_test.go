package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./portfolio.db", cfg.DatabasePath)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "0 */6 * * *", cfg.GithubSyncCron)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_GITHUB_USERNAME", "octocat")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.ServerPort)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "octocat", cfg.AdminGithub)
}

func TestLoad_MissingSecret(t *testing.T) {
	// JWT_SECRET has no default; loading without it must fail.
	_, err := Load()
	assert.Error(t, err)
}
