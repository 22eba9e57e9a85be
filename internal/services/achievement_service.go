package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dvieira/portfolio-be/internal/models"
)

// AchievementServiceProvider defines the interface for achievement services.
type AchievementServiceProvider interface {
	GetAllAchievements() ([]models.Achievement, error)
	GetAchievementByID(id string) (models.Achievement, error)
	CreateAchievement(a models.Achievement) (models.Achievement, error)
	UpdateAchievement(id string, a models.Achievement) (models.Achievement, error)
	DeleteAchievement(id string) error
}

// AchievementService provides business logic for achievements.
type AchievementService struct {
	db *sql.DB
}

// NewAchievementService creates a new AchievementService.
func NewAchievementService(db *sql.DB) *AchievementService {
	return &AchievementService{db: db}
}

func scanAchievement(scanner interface{ Scan(...interface{}) error }) (models.Achievement, error) {
	var a models.Achievement
	var issuer, awardedOn, url, desc sql.NullString
	err := scanner.Scan(&a.ID, &a.Title, &issuer, &awardedOn, &url, &desc, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	a.Issuer = issuer.String
	a.AwardedOn = awardedOn.String
	a.URL = url.String
	a.Description = desc.String
	return a, nil
}

// GetAllAchievements retrieves all achievements, newest first.
func (s *AchievementService) GetAllAchievements() ([]models.Achievement, error) {
	rows, err := s.db.Query(`
		SELECT id, title, issuer, awarded_on, url, description, created_at
		FROM achievements ORDER BY awarded_on DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []models.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// GetAchievementByID retrieves a single achievement by its ID.
func (s *AchievementService) GetAchievementByID(id string) (models.Achievement, error) {
	row := s.db.QueryRow(`
		SELECT id, title, issuer, awarded_on, url, description, created_at
		FROM achievements WHERE id = ?`, id)
	a, err := scanAchievement(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Achievement{}, fmt.Errorf("achievement with ID %s not found", id)
		}
		return models.Achievement{}, err
	}
	return a, nil
}

// CreateAchievement stores a new achievement.
func (s *AchievementService) CreateAchievement(a models.Achievement) (models.Achievement, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO achievements(id, title, issuer, awarded_on, url, description)
		VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Achievement{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(a.ID, a.Title, a.Issuer, a.AwardedOn, a.URL, a.Description); err != nil {
		return models.Achievement{}, err
	}
	return s.GetAchievementByID(a.ID)
}

// UpdateAchievement replaces an achievement's fields.
func (s *AchievementService) UpdateAchievement(id string, a models.Achievement) (models.Achievement, error) {
	res, err := s.db.Exec(`
		UPDATE achievements SET title = ?, issuer = ?, awarded_on = ?, url = ?, description = ?
		WHERE id = ?`,
		a.Title, a.Issuer, a.AwardedOn, a.URL, a.Description, id)
	if err != nil {
		return models.Achievement{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Achievement{}, fmt.Errorf("achievement with ID %s not found", id)
	}
	return s.GetAchievementByID(id)
}

// DeleteAchievement removes an achievement from the database.
func (s *AchievementService) DeleteAchievement(id string) error {
	_, err := s.db.Exec("DELETE FROM achievements WHERE id = ?", id)
	return err
}
