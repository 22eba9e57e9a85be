package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvieira/portfolio-be/internal/models"
)

func TestExperienceOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExperienceService(db)

	_, err := svc.CreateExperience(models.Experience{Role: "Junior Dev", Company: "Acme", StartDate: "2019-06", EndDate: "2021-01"})
	require.NoError(t, err)
	_, err = svc.CreateExperience(models.Experience{Role: "Senior Dev", Company: "Globex", StartDate: "2023-02", IsCurrent: true})
	require.NoError(t, err)
	_, err = svc.CreateExperience(models.Experience{Role: "Dev", Company: "Initech", StartDate: "2021-02", EndDate: "2023-01"})
	require.NoError(t, err)

	experiences, err := svc.GetAllExperiences()
	require.NoError(t, err)
	require.Len(t, experiences, 3)

	// Current position first, then most recent start dates.
	assert.Equal(t, "Senior Dev", experiences[0].Role)
	assert.Equal(t, "Dev", experiences[1].Role)
	assert.Equal(t, "Junior Dev", experiences[2].Role)
}

func TestAchievementCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)

	created, err := svc.CreateAchievement(models.Achievement{Title: "AWS Certified", Issuer: "Amazon", AwardedOn: "2024-05-10"})
	require.NoError(t, err)

	created.Issuer = "AWS"
	updated, err := svc.UpdateAchievement(created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "AWS", updated.Issuer)

	require.NoError(t, svc.DeleteAchievement(created.ID))
	all, err := svc.GetAllAchievements()
	require.NoError(t, err)
	assert.Empty(t, all)
}
