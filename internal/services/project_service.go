package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
)

// CoverImageFinder supplies a fallback cover image URL for a project created
// without one. Implemented by the Unsplash client; may be nil.
type CoverImageFinder interface {
	FindCoverImage(query string) (string, error)
}

// ProjectFilter narrows and orders project listings.
type ProjectFilter struct {
	Featured *bool
	Sort     string // "order" (default) or "recent"
}

// ProjectServiceProvider defines the interface for project services.
type ProjectServiceProvider interface {
	GetAllProjects(filter ProjectFilter) ([]models.Project, error)
	GetProjectByID(id string) (models.Project, error)
	CreateProject(project models.Project) (models.Project, error)
	UpdateProject(id string, project models.Project) (models.Project, error)
	DeleteProject(id string) error
}

// ProjectService provides business logic for project management.
type ProjectService struct {
	db     *sql.DB
	covers CoverImageFinder
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *sql.DB, covers CoverImageFinder) *ProjectService {
	return &ProjectService{db: db, covers: covers}
}

// scanProject is a helper to scan a project from a row or rows object.
func scanProject(scanner interface{ Scan(...interface{}) error }) (models.Project, error) {
	var p models.Project
	var desc, tech, repoURL, liveURL, imageURL sql.NullString

	err := scanner.Scan(
		&p.ID, &p.Title, &desc, &tech, &repoURL, &liveURL, &imageURL,
		&p.Featured, &p.Order, &p.CreatedAt,
	)
	if err != nil {
		return p, err
	}

	p.Description = desc.String
	p.TechJSON = tech.String
	p.RepoURL = repoURL.String
	p.LiveURL = liveURL.String
	p.ImageURL = imageURL.String

	p.PrepareForAPI()
	return p, nil
}

// GetAllProjects retrieves projects matching the filter.
func (s *ProjectService) GetAllProjects(filter ProjectFilter) ([]models.Project, error) {
	query := `
		SELECT id, title, description, tech_json, repo_url, live_url, image_url,
		       featured, display_order, created_at
		FROM projects`

	var args []interface{}
	if filter.Featured != nil {
		query += " WHERE featured = ?"
		args = append(args, *filter.Featured)
	}

	switch strings.ToLower(filter.Sort) {
	case "recent":
		query += " ORDER BY created_at DESC"
	default:
		query += " ORDER BY display_order, created_at DESC"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProjectByID retrieves a single project by its ID.
func (s *ProjectService) GetProjectByID(id string) (models.Project, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, tech_json, repo_url, live_url, image_url,
		       featured, display_order, created_at
		FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Project{}, fmt.Errorf("project with ID %s not found", id)
		}
		return models.Project{}, err
	}
	return p, nil
}

// CreateProject stores a new project. When no image URL is supplied and a
// cover finder is configured, one lookup is attempted; failure is logged and
// the project is created without an image.
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	project.PrepareForDB()

	if project.ImageURL == "" && s.covers != nil {
		imageURL, err := s.covers.FindCoverImage(project.Title)
		if err != nil {
			log.Warn().Err(err).Str("title", project.Title).Msg("Cover image lookup failed")
		} else {
			project.ImageURL = imageURL
		}
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO projects(id, title, description, tech_json, repo_url, live_url, image_url, featured, display_order)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Project{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(project.ID, project.Title, project.Description, project.TechJSON,
		project.RepoURL, project.LiveURL, project.ImageURL, project.Featured, project.Order)
	if err != nil {
		return models.Project{}, err
	}
	return s.GetProjectByID(project.ID)
}

// UpdateProject replaces a project's fields.
func (s *ProjectService) UpdateProject(id string, project models.Project) (models.Project, error) {
	project.PrepareForDB()

	stmt, err := s.db.Prepare(`
		UPDATE projects
		SET title = ?, description = ?, tech_json = ?, repo_url = ?, live_url = ?,
		    image_url = ?, featured = ?, display_order = ?
		WHERE id = ?`)
	if err != nil {
		return models.Project{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(project.Title, project.Description, project.TechJSON, project.RepoURL,
		project.LiveURL, project.ImageURL, project.Featured, project.Order, id)
	if err != nil {
		return models.Project{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Project{}, fmt.Errorf("project with ID %s not found", id)
	}
	return s.GetProjectByID(id)
}

// DeleteProject removes a project from the database.
func (s *ProjectService) DeleteProject(id string) error {
	_, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	return err
}
