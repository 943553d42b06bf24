package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"smartrecruit/api/internal/models"
)

func TestBuildApplicationsWorkbook(t *testing.T) {
	appID := uuid.New()
	apps := []models.Application{
		{
			ID:        appID,
			RoleName:  "developpeur_python",
			Status:    models.StatusInReview,
			CreatedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
			Candidate: models.User{Username: "candidat1"},
		},
		{
			ID:        uuid.New(),
			RoleName:  "devops",
			Status:    models.StatusPending,
			CreatedAt: time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
			Candidate: models.User{Username: "candidat2"},
		},
	}
	results := map[uuid.UUID]models.AnalysisResult{
		appID: {
			ApplicationID:   appID,
			ScoreGlobal:     73.5,
			ScoreSimilarity: 80,
			ScoreSkills:     50,
			ScoreExperience: 60,
			ScoreQuality:    90,
		},
	}

	buf, err := NewExportService().BuildApplicationsWorkbook(apps, results)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Candidatures", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Candidat", header)

	candidate, err := f.GetCellValue("Candidatures", "B2")
	require.NoError(t, err)
	assert.Equal(t, "candidat1", candidate)

	status, err := f.GetCellValue("Candidatures", "D2")
	require.NoError(t, err)
	assert.Equal(t, "En cours d'examen", status)

	score, err := f.GetCellValue("Candidatures", "E2")
	require.NoError(t, err)
	assert.Equal(t, "73.5", score)

	// Second application has no analysis yet
	noScore, err := f.GetCellValue("Candidatures", "E3")
	require.NoError(t, err)
	assert.Equal(t, "Non analysé", noScore)
}

func TestBuildApplicationsWorkbookEmpty(t *testing.T) {
	buf, err := NewExportService().BuildApplicationsWorkbook(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Candidatures", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "En attente", StatusLabel(models.StatusPending))
	assert.Equal(t, "Acceptée", StatusLabel(models.StatusAccepted))
	assert.Equal(t, "Refusée", StatusLabel(models.StatusRejected))
	assert.Equal(t, "inconnu", StatusLabel(models.ApplicationStatus("inconnu")))
}
