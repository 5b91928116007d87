package database

import (
	"errors"
	"testing"

	"github.com/campusfest/campus-events-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// A connection from Open must surface driver duplicate-key failures as
// gorm.ErrDuplicatedKey, otherwise the conflict mapping in the signup
// and registration paths never fires.
func TestOpenTranslatesDuplicateKey(t *testing.T) {
	db, err := Open(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	user := models.User{FullName: "First", Email: "taken@campus.edu", Password: "x", Role: models.RoleOrganizer}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	dup := models.User{FullName: "Second", Email: "taken@campus.edu", Password: "x", Role: models.RoleOrganizer}
	if err := db.Create(&dup).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	event := models.Event{OrganizerID: user.ID, Name: "Fest", StartTime: "10:00", EndTime: "18:00", ImageFile: models.DefaultEventImage}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	reg := models.Registration{StudentID: user.ID, EventID: event.ID}
	if err := db.Create(&reg).Error; err != nil {
		t.Fatalf("failed to create registration: %v", err)
	}
	second := models.Registration{StudentID: user.ID, EventID: event.ID}
	if err := db.Create(&second).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey for duplicate registration, got %v", err)
	}
}
