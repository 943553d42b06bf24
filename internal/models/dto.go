package models

import "time"

type ApplicationResponse struct {
	ID               string     `json:"id"`
	RoleName         string     `json:"role_name"`
	Status           string     `json:"status"`
	CVFilename       string     `json:"cv_filename"`
	LetterFilename   *string    `json:"letter_filename,omitempty"`
	Message          *string    `json:"message,omitempty"`
	AIScore          *float64   `json:"ai_score,omitempty"`
	RecruiterComment *string    `json:"recruiter_comment,omitempty"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewApplicationResponse(app *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:               app.ID.String(),
		RoleName:         app.RoleName,
		Status:           string(app.Status),
		CVFilename:       app.CVOriginalFilename,
		LetterFilename:   app.LetterFilename,
		Message:          app.Message,
		AIScore:          app.AIScore,
		RecruiterComment: app.RecruiterComment,
		RespondedAt:      app.RespondedAt,
		CreatedAt:        app.CreatedAt,
	}
}

type StatusUpdateRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

type AssignRecruiterRequest struct {
	RecruiterID string `json:"recruiter_id" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type AnalysisJobResponse struct {
	ID            string  `json:"id"`
	ApplicationID string  `json:"application_id"`
	Status        string  `json:"status"`
	ErrorMessage  *string `json:"error_message,omitempty"`
}

// AnalysisResponse is the recruiter-facing view of a persisted analysis.
type AnalysisResponse struct {
	Status          string    `json:"status"`
	ScoreGlobal     float64   `json:"score_global"`
	ScoreSimilarity float64   `json:"score_similarite"`
	ScoreSkills     float64   `json:"score_competences"`
	ScoreExperience float64   `json:"score_experience"`
	ScoreQuality    float64   `json:"score_qualite"`
	Recommendations []string  `json:"recommendations"`
	ModelName       string    `json:"model_name"`
	ModelVersion    string    `json:"model_version"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

type SimilarProfile struct {
	ApplicationID string  `json:"application_id"`
	RoleName      string  `json:"role_name"`
	Score         float32 `json:"score"`
}

type PreferencesUpdateRequest struct {
	ReceiveStatusUpdates   *bool `json:"receive_status_updates"`
	ReceiveNewApplications *bool `json:"receive_new_applications"`
	ReceiveAssignments     *bool `json:"receive_assignments"`
}
