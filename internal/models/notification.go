package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationStatusUpdate     NotificationType = "status_update"
	NotificationNewApplication   NotificationType = "new_application"
	NotificationAssignment       NotificationType = "recruiter_assignment"
	NotificationAnalysisComplete NotificationType = "analysis_complete"
)

// EmailPreferences controls which notification emails a user receives.
type EmailPreferences struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	ReceiveStatusUpdates   bool `gorm:"not null;default:true" json:"receive_status_updates"`
	ReceiveNewApplications bool `gorm:"not null;default:true" json:"receive_new_applications"`
	ReceiveAssignments     bool `gorm:"not null;default:true" json:"receive_assignments"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (EmailPreferences) TableName() string {
	return "email_preferences"
}

// NotificationLog records every email the mailer attempted, including
// failures, for auditability.
type NotificationLog struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RecipientID   uuid.UUID        `gorm:"type:uuid;not null" json:"recipient_id"`
	Type          NotificationType `gorm:"type:text;not null" json:"type"`
	Subject       string           `gorm:"type:text;not null" json:"subject"`
	ApplicationID *uuid.UUID       `gorm:"type:uuid" json:"application_id,omitempty"`
	Success       bool             `gorm:"not null;default:true" json:"success"`
	ErrorMessage  *string          `gorm:"type:text" json:"error_message,omitempty"`
	SentAt        time.Time        `gorm:"type:timestamp;default:now()" json:"sent_at"`

	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}

func (NotificationLog) TableName() string {
	return "notification_logs"
}
