package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "en_attente"
	StatusInReview ApplicationStatus = "en_cours"
	StatusAccepted ApplicationStatus = "acceptee"
	StatusRejected ApplicationStatus = "refusee"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is a candidate's submission for a target role. A candidate
// can apply at most once per role (unique candidate+role index).
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_candidate_role" json:"candidate_id"`
	RoleName    string    `gorm:"type:text;not null;uniqueIndex:idx_candidate_role" json:"role_name"`

	CVFilename         string  `gorm:"type:text;not null" json:"cv_filename"`
	CVOriginalFilename string  `gorm:"type:text;not null" json:"cv_original_filename"`
	CVFilePath         string  `gorm:"type:text;not null" json:"-"`
	LetterFilename     *string `gorm:"type:text" json:"letter_filename,omitempty"`
	LetterFilePath     *string `gorm:"type:text" json:"-"`
	Message            *string `gorm:"type:text" json:"message,omitempty"`

	Status  ApplicationStatus `gorm:"type:text;not null;default:'en_attente'" json:"status"`
	AIScore *float64          `gorm:"type:decimal(5,2)" json:"ai_score,omitempty"`

	AssignedRecruiterID *uuid.UUID `gorm:"type:uuid" json:"assigned_recruiter_id,omitempty"`
	RecruiterComment    *string    `gorm:"type:text" json:"recruiter_comment,omitempty"`
	RespondedAt         *time.Time `gorm:"type:timestamp" json:"responded_at,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Candidate         User  `gorm:"foreignKey:CandidateID" json:"-"`
	AssignedRecruiter *User `gorm:"foreignKey:AssignedRecruiterID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
