package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/campusfest/campus-events-backend/internal/config"
	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"github.com/campusfest/campus-events-backend/pkg/database"
	"github.com/campusfest/campus-events-backend/pkg/email"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// newTestEmailService has no API key, so every send is a no-op.
func newTestEmailService() *email.EmailService {
	return email.NewEmailService(config.EmailConfig{}, zap.NewNop())
}

type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(key string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	delete(f.uploads, key)
	return nil
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole, uniqueID string) *models.User {
	t.Helper()

	user := &models.User{
		FullName: name,
		Email:    email,
		Password: "hashed",
		Role:     role,
	}
	if uniqueID != "" {
		user.UniqueID = &uniqueID
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createEvent(t *testing.T, db *gorm.DB, organizerID uint, name string) *models.Event {
	t.Helper()

	repo := repository.NewEventRepository(db)
	event, err := repo.Create(&models.Event{
		OrganizerID: organizerID,
		Name:        name,
		StartDate:   mustDate(t, "2025-09-01"),
		EndDate:     mustDate(t, "2025-09-01"),
		StartTime:   "10:00",
		EndTime:     "18:00",
		ImageFile:   models.DefaultEventImage,
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	return event
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return parsed
}

// fileUpload builds a real multipart.FileHeader the way fiber hands it
// to the handler.
func fileUpload(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to read form: %v", err)
	}
	return form.File["image"][0]
}
