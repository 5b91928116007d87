package models

import (
	"time"
)

// Registration links one participant to one event. The composite unique
// index keeps duplicate register requests from racing past the
// application-level existence check.
type Registration struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_student_event"`
	EventID   uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_student_event"`
	Student   User      `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Event     Event     `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipantRow is one registrant as shown on the participants page
// and written to the CSV export.
type ParticipantRow struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Email     string `json:"email"`
}
