package models

import (
	"time"
)

// DefaultEventImage is the placeholder referenced by events created
// without a usable image upload.
const DefaultEventImage = "default.jpg"

// DateLayout is the wire format for event dates as submitted by the
// dashboard forms. Times-of-day travel as validated "HH:MM" strings.
const DateLayout = "2006-01-02"

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrganizerID uint      `json:"organizer_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	StartTime   string    `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime     string    `json:"end_time" gorm:"type:varchar(5);not null"`
	ImageFile   string    `json:"image_file" gorm:"not null;default:default.jpg"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventRequest is the create/edit form. Edit overwrites every
// descriptive field, so the two operations share one schema.
type EventRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
	StartDate   string `json:"start_date" form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" form:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" form:"end_time" validate:"required,datetime=15:04"`
}
