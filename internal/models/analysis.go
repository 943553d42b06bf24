package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisJobStatus string

const (
	JobQueued     AnalysisJobStatus = "queued"
	JobProcessing AnalysisJobStatus = "processing"
	JobCompleted  AnalysisJobStatus = "completed"
	JobFailed     AnalysisJobStatus = "failed"
)

// AnalysisJob is the asynchronous handle returned when a résumé analysis is
// triggered. The worker moves it through queued -> processing -> completed
// or failed; a failed job keeps the triggering error message.
type AnalysisJob struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID         `gorm:"type:uuid;not null" json:"application_id"`
	Status        AnalysisJobStatus `gorm:"type:text;not null;default:'queued'" json:"status"`
	ErrorMessage  *string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}

// AnalysisResult holds the persisted outcome of one successful pipeline run.
// One row per application; a reanalysis overwrites the previous row.
type AnalysisResult struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`

	RawExtractedData datatypes.JSON `gorm:"type:jsonb" json:"raw_extracted_data"`

	ScoreGlobal     float64 `gorm:"type:decimal(5,2);not null" json:"score_global"`
	ScoreSimilarity float64 `gorm:"type:decimal(5,2);not null" json:"score_similarite"`
	ScoreSkills     float64 `gorm:"type:decimal(5,2);not null" json:"score_competences"`
	ScoreExperience float64 `gorm:"type:decimal(5,2);not null" json:"score_experience"`
	ScoreQuality    float64 `gorm:"type:decimal(5,2);not null" json:"score_qualite"`

	Recommendations string    `gorm:"type:text" json:"recommendations"`
	ModelName       string    `gorm:"type:text" json:"model_name"`
	ModelVersion    string    `gorm:"type:text" json:"model_version"`
	AnalyzedAt      time.Time `gorm:"type:timestamp;default:now()" json:"analyzed_at"`

	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (AnalysisResult) TableName() string {
	return "analysis_results"
}

// RecommendationList splits the stored newline-joined recommendations.
func (a *AnalysisResult) RecommendationList() []string {
	if a.Recommendations == "" {
		return nil
	}
	return strings.Split(a.Recommendations, "\n")
}
