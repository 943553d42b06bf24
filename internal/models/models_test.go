package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInReview.Valid())
	assert.True(t, StatusAccepted.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ApplicationStatus("archivee").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestUserRoleHelpers(t *testing.T) {
	admin := User{Role: RoleAdmin}
	recruiter := User{Role: RoleRecruiter}
	candidate := User{Role: RoleCandidate}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanManageApplications())
	assert.True(t, recruiter.IsRecruiter())
	assert.True(t, recruiter.CanManageApplications())
	assert.True(t, candidate.IsCandidate())
	assert.False(t, candidate.CanManageApplications())
}

func TestRecommendationList(t *testing.T) {
	result := AnalysisResult{
		Recommendations: "Expérience professionnelle limitée\nLe CV pourrait être plus détaillé",
	}

	assert.Equal(t, []string{
		"Expérience professionnelle limitée",
		"Le CV pourrait être plus détaillé",
	}, result.RecommendationList())

	empty := AnalysisResult{}
	assert.Nil(t, empty.RecommendationList())
}

func TestNewApplicationResponse(t *testing.T) {
	score := 73.5
	comment := "bon profil"
	respondedAt := time.Now()

	app := &Application{
		ID:                 uuid.New(),
		RoleName:           "devops",
		Status:             StatusAccepted,
		CVOriginalFilename: "cv_jean.pdf",
		AIScore:            &score,
		RecruiterComment:   &comment,
		RespondedAt:        &respondedAt,
	}

	resp := NewApplicationResponse(app)

	assert.Equal(t, app.ID.String(), resp.ID)
	assert.Equal(t, "devops", resp.RoleName)
	assert.Equal(t, string(StatusAccepted), resp.Status)
	assert.Equal(t, "cv_jean.pdf", resp.CVFilename)
	assert.Equal(t, &score, resp.AIScore)
	assert.Equal(t, &comment, resp.RecruiterComment)
	assert.Nil(t, resp.LetterFilename)
}
