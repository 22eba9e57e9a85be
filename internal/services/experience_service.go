package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dvieira/portfolio-be/internal/models"
)

// ExperienceServiceProvider defines the interface for work experience services.
type ExperienceServiceProvider interface {
	GetAllExperiences() ([]models.Experience, error)
	GetExperienceByID(id string) (models.Experience, error)
	CreateExperience(exp models.Experience) (models.Experience, error)
	UpdateExperience(id string, exp models.Experience) (models.Experience, error)
	DeleteExperience(id string) error
}

// ExperienceService provides business logic for work experience entries.
type ExperienceService struct {
	db *sql.DB
}

// NewExperienceService creates a new ExperienceService.
func NewExperienceService(db *sql.DB) *ExperienceService {
	return &ExperienceService{db: db}
}

func scanExperience(scanner interface{ Scan(...interface{}) error }) (models.Experience, error) {
	var e models.Experience
	var location, startDate, endDate, summary sql.NullString
	err := scanner.Scan(&e.ID, &e.Role, &e.Company, &location, &startDate, &endDate, &e.IsCurrent, &summary, &e.CreatedAt)
	if err != nil {
		return e, err
	}
	e.Location = location.String
	e.StartDate = startDate.String
	e.EndDate = endDate.String
	e.Summary = summary.String
	return e, nil
}

// GetAllExperiences retrieves all entries, most recent position first.
func (s *ExperienceService) GetAllExperiences() ([]models.Experience, error) {
	rows, err := s.db.Query(`
		SELECT id, role, company, location, start_date, end_date, is_current, summary, created_at
		FROM experiences ORDER BY is_current DESC, start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

// GetExperienceByID retrieves a single entry by its ID.
func (s *ExperienceService) GetExperienceByID(id string) (models.Experience, error) {
	row := s.db.QueryRow(`
		SELECT id, role, company, location, start_date, end_date, is_current, summary, created_at
		FROM experiences WHERE id = ?`, id)
	e, err := scanExperience(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Experience{}, fmt.Errorf("experience with ID %s not found", id)
		}
		return models.Experience{}, err
	}
	return e, nil
}

// CreateExperience stores a new entry.
func (s *ExperienceService) CreateExperience(exp models.Experience) (models.Experience, error) {
	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO experiences(id, role, company, location, start_date, end_date, is_current, summary)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Experience{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(exp.ID, exp.Role, exp.Company, exp.Location, exp.StartDate, exp.EndDate, exp.IsCurrent, exp.Summary)
	if err != nil {
		return models.Experience{}, err
	}
	return s.GetExperienceByID(exp.ID)
}

// UpdateExperience replaces an entry's fields.
func (s *ExperienceService) UpdateExperience(id string, exp models.Experience) (models.Experience, error) {
	res, err := s.db.Exec(`
		UPDATE experiences
		SET role = ?, company = ?, location = ?, start_date = ?, end_date = ?, is_current = ?, summary = ?
		WHERE id = ?`,
		exp.Role, exp.Company, exp.Location, exp.StartDate, exp.EndDate, exp.IsCurrent, exp.Summary, id)
	if err != nil {
		return models.Experience{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Experience{}, fmt.Errorf("experience with ID %s not found", id)
	}
	return s.GetExperienceByID(id)
}

// DeleteExperience removes an entry from the database.
func (s *ExperienceService) DeleteExperience(id string) error {
	_, err := s.db.Exec("DELETE FROM experiences WHERE id = ?", id)
	return err
}
