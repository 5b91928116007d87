package models

type SignupRequest struct {
	FullName   string `json:"full_name" form:"full_name" validate:"required"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"required,min=6"`
	Role       string `json:"role" form:"role" validate:"required,oneof=organizer participant"`
	UniqueID   string `json:"unique_id" form:"unique_id"`
	SecretCode string `json:"secret_code" form:"secret_code"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// StudentDashboard carries everything the student view needs: the full
// catalogue, the set of event IDs the student holds registrations for,
// and the registered events themselves.
type StudentDashboard struct {
	Events             []Event `json:"events"`
	RegisteredEventIDs []uint  `json:"registered_event_ids"`
	RegisteredEvents   []Event `json:"registered_events"`
}
