package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/campusfest/campus-events-backend/internal/middleware"
	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"github.com/campusfest/campus-events-backend/internal/service"
	"github.com/campusfest/campus-events-backend/pkg/database"
	jwtPkg "github.com/campusfest/campus-events-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
)

// Full request-level walk of the export surface: routing, session
// cookie, role gate, ownership check, CSV headers and body.
func TestDownloadParticipants(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := database.Open(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	regRepo := repository.NewRegistrationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	eventService := service.NewEventService(eventRepo, regRepo, nil, false)
	exportHandler := NewExportHandler(service.NewExportService(regRepo), eventService)

	app := fiber.New()
	app.Get("/download_participants/:eventID",
		middleware.AuthMiddleware(),
		middleware.RequireRole(models.RoleOrganizer),
		exportHandler.DownloadParticipants,
	)

	organizer := models.User{FullName: "Org", Email: "org@campus.edu", Password: "x", Role: models.RoleOrganizer}
	if err := db.Create(&organizer).Error; err != nil {
		t.Fatalf("failed to create organizer: %v", err)
	}

	uniqueID := "S1001"
	student := models.User{FullName: "Priya Sharma", UniqueID: &uniqueID, Email: "priya@campus.edu", Password: "x", Role: models.RoleParticipant}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}

	event, err := eventService.CreateEvent(organizer.ID, models.EventRequest{
		Name:      "Tech Fest",
		StartDate: "2025-09-01",
		EndDate:   "2025-09-01",
		StartTime: "10:00",
		EndTime:   "18:00",
	}, nil)
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if err := db.Create(&models.Registration{StudentID: student.ID, EventID: event.ID}).Error; err != nil {
		t.Fatalf("failed to register student: %v", err)
	}

	path := "/download_participants/" + itoa(event.ID)

	t.Run("OwnerGetsCSV", func(t *testing.T) {
		token, _ := jwtPkg.GenerateToken(organizer.ID, organizer.Email, string(organizer.Role))
		req := httptest.NewRequest("GET", path, nil)
		req.AddCookie(&http.Cookie{Name: jwtPkg.CookieName, Value: token})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected text/csv, got %q", ct)
		}
		wantDisp := "attachment; filename=participants_" + itoa(event.ID) + ".csv"
		if disp := resp.Header.Get("Content-Disposition"); disp != wantDisp {
			t.Errorf("expected %q, got %q", wantDisp, disp)
		}

		body, _ := io.ReadAll(resp.Body)
		want := "Name,Student ID,Email\r\nPriya Sharma,S1001,priya@campus.edu\r\n"
		if string(body) != want {
			t.Errorf("CSV mismatch:\nwant %q\ngot  %q", want, string(body))
		}
	})

	t.Run("OtherOrganizerDenied", func(t *testing.T) {
		other := models.User{FullName: "Rival", Email: "rival@campus.edu", Password: "x", Role: models.RoleOrganizer}
		if err := db.Create(&other).Error; err != nil {
			t.Fatalf("failed to create organizer: %v", err)
		}

		token, _ := jwtPkg.GenerateToken(other.ID, other.Email, string(other.Role))
		req := httptest.NewRequest("GET", path, nil)
		req.AddCookie(&http.Cookie{Name: jwtPkg.CookieName, Value: token})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("ParticipantDenied", func(t *testing.T) {
		token, _ := jwtPkg.GenerateToken(student.ID, student.Email, string(student.Role))
		req := httptest.NewRequest("GET", path, nil)
		req.AddCookie(&http.Cookie{Name: jwtPkg.CookieName, Value: token})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("NoSession", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
