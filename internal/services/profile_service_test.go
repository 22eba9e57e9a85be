package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvieira/portfolio-be/internal/models"
)

func TestAboutUpsert(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	// Empty document before any update.
	about, err := svc.GetAbout()
	require.NoError(t, err)
	assert.Empty(t, about.Headline)

	updated, err := svc.UpdateAbout(models.About{Headline: "Software Engineer", Bio: "I build things."})
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", updated.Headline)

	// A second update replaces, never duplicates.
	updated, err = svc.UpdateAbout(models.About{Headline: "Backend Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", updated.Headline)
	assert.Empty(t, updated.Bio)
}

func TestContactUpsert(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	contact, err := svc.GetContact()
	require.NoError(t, err)
	assert.Empty(t, contact.Email)

	updated, err := svc.UpdateContact(models.Contact{Email: "me@example.com", GithubURL: "https://github.com/octocat"})
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", updated.Email)
	assert.Equal(t, "https://github.com/octocat", updated.GithubURL)
}
