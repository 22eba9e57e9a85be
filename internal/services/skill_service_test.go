package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvieira/portfolio-be/internal/models"
)

func TestSkillCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db)

	created, err := svc.CreateSkill(models.Skill{Name: "Go", Category: "language", Level: 90, Order: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 90, created.Level)

	created.Level = 95
	updated, err := svc.UpdateSkill(created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, 95, updated.Level)

	require.NoError(t, svc.DeleteSkill(created.ID))
	_, err = svc.GetSkillByID(created.ID)
	assert.Error(t, err)
}

func TestGetAllSkills_CategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService(db)

	_, err := svc.CreateSkill(models.Skill{Name: "Go", Category: "language"})
	require.NoError(t, err)
	_, err = svc.CreateSkill(models.Skill{Name: "Docker", Category: "tool"})
	require.NoError(t, err)

	languages, err := svc.GetAllSkills("language")
	require.NoError(t, err)
	require.Len(t, languages, 1)
	assert.Equal(t, "Go", languages[0].Name)

	all, err := svc.GetAllSkills("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
