package service

import (
	"errors"
	"testing"

	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"gorm.io/gorm"
)

func newRegistrationService(t *testing.T) (*RegistrationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRegistrationService(
		repository.NewRegistrationRepository(db),
		repository.NewEventRepository(db),
		repository.NewUserRepository(db),
		newTestEmailService(),
	)
	return svc, db
}

func TestRegisterIsIdempotent(t *testing.T) {
	svc, db := newRegistrationService(t)
	student := createUser(t, db, "Student", "s@campus.edu", models.RoleParticipant, "S1")
	event := createEvent(t, db, 1, "Tech Fest")

	created, err := svc.Register(student.ID, event.ID)
	if err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if !created {
		t.Fatal("expected first Register to create")
	}

	created, err = svc.Register(student.ID, event.ID)
	if err != nil {
		t.Fatalf("second Register returned error: %v", err)
	}
	if created {
		t.Error("second Register should be a no-op")
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 registration, got %d", count)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc, db := newRegistrationService(t)
	student := createUser(t, db, "Student", "s@campus.edu", models.RoleParticipant, "S1")

	if _, err := svc.Register(student.ID, 9999); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestUnregister(t *testing.T) {
	svc, db := newRegistrationService(t)
	student := createUser(t, db, "Student", "s@campus.edu", models.RoleParticipant, "S1")
	event := createEvent(t, db, 1, "Tech Fest")

	// Not registered yet: no-op, no error.
	removed, err := svc.Unregister(student.ID, event.ID)
	if err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
	if removed {
		t.Error("expected no-op unregister")
	}

	if _, err := svc.Register(student.ID, event.ID); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	removed, err = svc.Unregister(student.ID, event.ID)
	if err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
	if !removed {
		t.Error("expected unregister to remove the registration")
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 registrations, got %d", count)
	}
}

func TestStudentDashboard(t *testing.T) {
	svc, db := newRegistrationService(t)
	student := createUser(t, db, "Student", "s@campus.edu", models.RoleParticipant, "S1")
	fest := createEvent(t, db, 1, "Tech Fest")
	createEvent(t, db, 1, "Guest Talk")

	if _, err := svc.Register(student.ID, fest.ID); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	dashboard, err := svc.StudentDashboard(student.ID)
	if err != nil {
		t.Fatalf("StudentDashboard returned error: %v", err)
	}

	if len(dashboard.Events) != 2 {
		t.Errorf("expected full catalogue of 2 events, got %d", len(dashboard.Events))
	}
	if len(dashboard.RegisteredEventIDs) != 1 || dashboard.RegisteredEventIDs[0] != fest.ID {
		t.Errorf("expected registered set [%d], got %v", fest.ID, dashboard.RegisteredEventIDs)
	}
	if len(dashboard.RegisteredEvents) != 1 || dashboard.RegisteredEvents[0].Name != "Tech Fest" {
		t.Errorf("expected registered event Tech Fest, got %+v", dashboard.RegisteredEvents)
	}

	// Unregister drops the event from the set.
	if _, err := svc.Unregister(student.ID, fest.ID); err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
	dashboard, err = svc.StudentDashboard(student.ID)
	if err != nil {
		t.Fatalf("StudentDashboard returned error: %v", err)
	}
	if len(dashboard.RegisteredEventIDs) != 0 {
		t.Errorf("expected empty registered set, got %v", dashboard.RegisteredEventIDs)
	}
}
