package models

import (
	"time"
)

type UserRole string

const (
	RoleOrganizer   UserRole = "organizer"
	RoleParticipant UserRole = "participant"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"full_name" gorm:"not null"`
	// UniqueID is the student/roll number. Required for participants,
	// absent for organizers; uniqueness only applies to non-null values.
	UniqueID  *string   `json:"unique_id,omitempty" gorm:"uniqueIndex"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}

func (u *User) IsParticipant() bool {
	return u.Role == RoleParticipant
}

// StudentNumber returns the unique ID or an empty string for users
// that never supplied one.
func (u *User) StudentNumber() string {
	if u.UniqueID == nil {
		return ""
	}
	return *u.UniqueID
}
