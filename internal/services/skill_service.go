package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dvieira/portfolio-be/internal/models"
)

// SkillServiceProvider defines the interface for skill services.
type SkillServiceProvider interface {
	GetAllSkills(category string) ([]models.Skill, error)
	GetSkillByID(id string) (models.Skill, error)
	CreateSkill(skill models.Skill) (models.Skill, error)
	UpdateSkill(id string, skill models.Skill) (models.Skill, error)
	DeleteSkill(id string) error
}

// SkillService provides business logic for skill management.
type SkillService struct {
	db *sql.DB
}

// NewSkillService creates a new SkillService.
func NewSkillService(db *sql.DB) *SkillService {
	return &SkillService{db: db}
}

func scanSkill(scanner interface{ Scan(...interface{}) error }) (models.Skill, error) {
	var sk models.Skill
	var category sql.NullString
	err := scanner.Scan(&sk.ID, &sk.Name, &category, &sk.Level, &sk.Order, &sk.CreatedAt)
	if err != nil {
		return sk, err
	}
	sk.Category = category.String
	return sk, nil
}

// GetAllSkills retrieves skills, optionally restricted to one category.
func (s *SkillService) GetAllSkills(category string) ([]models.Skill, error) {
	query := "SELECT id, name, category, level, display_order, created_at FROM skills"
	var args []interface{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// GetSkillByID retrieves a single skill by its ID.
func (s *SkillService) GetSkillByID(id string) (models.Skill, error) {
	row := s.db.QueryRow("SELECT id, name, category, level, display_order, created_at FROM skills WHERE id = ?", id)
	sk, err := scanSkill(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Skill{}, fmt.Errorf("skill with ID %s not found", id)
		}
		return models.Skill{}, err
	}
	return sk, nil
}

// CreateSkill stores a new skill.
func (s *SkillService) CreateSkill(skill models.Skill) (models.Skill, error) {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}

	stmt, err := s.db.Prepare("INSERT INTO skills(id, name, category, level, display_order) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Skill{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(skill.ID, skill.Name, skill.Category, skill.Level, skill.Order); err != nil {
		return models.Skill{}, err
	}
	return s.GetSkillByID(skill.ID)
}

// UpdateSkill replaces a skill's fields.
func (s *SkillService) UpdateSkill(id string, skill models.Skill) (models.Skill, error) {
	res, err := s.db.Exec("UPDATE skills SET name = ?, category = ?, level = ?, display_order = ? WHERE id = ?",
		skill.Name, skill.Category, skill.Level, skill.Order, id)
	if err != nil {
		return models.Skill{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Skill{}, fmt.Errorf("skill with ID %s not found", id)
	}
	return s.GetSkillByID(id)
}

// DeleteSkill removes a skill from the database.
func (s *SkillService) DeleteSkill(id string) error {
	_, err := s.db.Exec("DELETE FROM skills WHERE id = ?", id)
	return err
}
