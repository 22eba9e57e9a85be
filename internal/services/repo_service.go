package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
)

// RepoLister fetches the public repositories of a GitHub user. Implemented
// by the github package client.
type RepoLister interface {
	ListPublicRepos(ctx context.Context, username string) ([]models.Repo, error)
}

// RepoServiceProvider defines the interface for the GitHub repo cache.
type RepoServiceProvider interface {
	GetCachedRepos() ([]models.Repo, error)
	SyncRepos(ctx context.Context) (int, error)
}

// RepoService maintains a local cache of the admin's GitHub repositories so
// the import view does not hit the GitHub API on every request.
type RepoService struct {
	db     *sql.DB
	github RepoLister
	admins AdminServiceProvider
}

// NewRepoService creates a new RepoService.
func NewRepoService(db *sql.DB, github RepoLister, admins AdminServiceProvider) *RepoService {
	return &RepoService{db: db, github: github, admins: admins}
}

// GetCachedRepos returns the cached repositories, most starred first.
func (s *RepoService) GetCachedRepos() ([]models.Repo, error) {
	rows, err := s.db.Query(`
		SELECT id, name, full_name, description, html_url, language, stars, forks, topics_json, pushed_at, synced_at
		FROM github_repos ORDER BY stars DESC, pushed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repos := []models.Repo{}
	for rows.Next() {
		var r models.Repo
		var desc, htmlURL, language, topics sql.NullString
		var pushedAt sql.NullTime
		err := rows.Scan(&r.ID, &r.Name, &r.FullName, &desc, &htmlURL, &language, &r.Stars, &r.Forks, &topics, &pushedAt, &r.SyncedAt)
		if err != nil {
			return nil, err
		}
		r.Description = desc.String
		r.HTMLURL = htmlURL.String
		r.Language = language.String
		r.TopicsJSON = topics.String
		r.PushedAt = pushedAt.Time
		r.PrepareForAPI()
		repos = append(repos, r)
	}
	return repos, rows.Err()
}

// SyncRepos fetches the admin's public repositories and replaces the cache.
// Returns the number of repositories stored.
func (s *RepoService) SyncRepos(ctx context.Context) (int, error) {
	if s.github == nil {
		return 0, fmt.Errorf("github client not configured")
	}

	username, err := s.admins.GetGithubUsername()
	if err != nil {
		return 0, err
	}
	if username == "" {
		return 0, fmt.Errorf("admin has no github username configured")
	}

	repos, err := s.github.ListPublicRepos(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("fetching repositories for %s: %w", username, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM github_repos"); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO github_repos(id, name, full_name, description, html_url, language, stars, forks, topics_json, pushed_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range repos {
		r := &repos[i]
		r.PrepareForDB()
		if _, err := stmt.Exec(r.ID, r.Name, r.FullName, r.Description, r.HTMLURL, r.Language, r.Stars, r.Forks, r.TopicsJSON, r.PushedAt); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Info().Int("count", len(repos)).Str("username", username).Msg("GitHub repo cache refreshed")
	return len(repos), nil
}
