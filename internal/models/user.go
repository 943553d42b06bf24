package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleRecruiter UserRole = "recruteur"
	RoleCandidate UserRole = "candidat"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleCandidate:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	Role         UserRole  `gorm:"type:text;not null;default:'candidat'" json:"role"`
	Phone        string    `gorm:"type:text" json:"phone,omitempty"`
	APIToken     string    `gorm:"type:text;uniqueIndex;not null" json:"-"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}

func (u *User) IsCandidate() bool {
	return u.Role == RoleCandidate
}

// CanManageApplications reports whether the user may triage applications
// that belong to other users.
func (u *User) CanManageApplications() bool {
	return u.IsAdmin() || u.IsRecruiter()
}
