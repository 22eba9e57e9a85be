package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	admin, err := svc.EnsureAdmin("admin", "admin@example.com", "admin123", "octocat")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "octocat", admin.GithubUsername)
	assert.Empty(t, admin.PasswordHash)

	// A second call must not create another account.
	again, err := svc.EnsureAdmin("someone-else", "x@example.com", "other", "")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, "admin", again.Username)
}

func TestAuthenticate_Success(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.EnsureAdmin("admin", "admin@example.com", "admin123", "")
	require.NoError(t, err)

	admin, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)
	assert.Empty(t, admin.PasswordHash, "hash must never leave the service")
}

func TestAuthenticate_UniformFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.EnsureAdmin("admin", "admin@example.com", "admin123", "")
	require.NoError(t, err)

	// Wrong password and unknown username must be indistinguishable.
	_, wrongPass := svc.Authenticate("admin", "wrong")
	_, unknownUser := svc.Authenticate("nobody", "admin123")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestGetAdminByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.EnsureAdmin("admin", "admin@example.com", "admin123", "octocat")
	require.NoError(t, err)

	admin, err := svc.GetAdminByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Empty(t, admin.PasswordHash)

	_, err = svc.GetAdminByID("missing")
	assert.Error(t, err)
}

func TestGetGithubUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.GetGithubUsername()
	assert.Error(t, err, "no admin provisioned yet")

	_, err = svc.EnsureAdmin("admin", "admin@example.com", "admin123", "octocat")
	require.NoError(t, err)

	username, err := svc.GetGithubUsername()
	require.NoError(t, err)
	assert.Equal(t, "octocat", username)
}
