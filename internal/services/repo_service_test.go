package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvieira/portfolio-be/internal/models"
)

type fakeRepoLister struct {
	repos []models.Repo
}

func (f *fakeRepoLister) ListPublicRepos(ctx context.Context, username string) ([]models.Repo, error) {
	return f.repos, nil
}

func TestSyncRepos_ReplacesCache(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminService(db)
	_, err := admins.EnsureAdmin("admin", "admin@example.com", "admin123", "octocat")
	require.NoError(t, err)

	lister := &fakeRepoLister{repos: []models.Repo{
		{ID: 1, Name: "hello-world", FullName: "octocat/hello-world", Stars: 5, Topics: []string{"go"}, PushedAt: time.Now()},
		{ID: 2, Name: "spoon-knife", FullName: "octocat/spoon-knife", Stars: 11, PushedAt: time.Now()},
	}}
	svc := NewRepoService(db, lister, admins)

	count, err := svc.SyncRepos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	repos, err := svc.GetCachedRepos()
	require.NoError(t, err)
	require.Len(t, repos, 2)
	// Most starred first.
	assert.Equal(t, "spoon-knife", repos[0].Name)
	assert.Equal(t, []string{"go"}, repos[1].Topics)

	// A second sync replaces rather than appends.
	lister.repos = lister.repos[:1]
	count, err = svc.SyncRepos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	repos, err = svc.GetCachedRepos()
	require.NoError(t, err)
	assert.Len(t, repos, 1)
}

func TestSyncRepos_NoGithubUsername(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminService(db)
	_, err := admins.EnsureAdmin("admin", "admin@example.com", "admin123", "")
	require.NoError(t, err)

	svc := NewRepoService(db, &fakeRepoLister{}, admins)
	_, err = svc.SyncRepos(context.Background())
	assert.Error(t, err)
}

func TestSyncRepos_NoClient(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminService(db)
	svc := NewRepoService(db, nil, admins)

	_, err := svc.SyncRepos(context.Background())
	assert.Error(t, err)
}
