package service

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"github.com/campusfest/campus-events-backend/pkg/storage"
	"github.com/campusfest/campus-events-backend/pkg/utils"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrNotEventOwner    = errors.New("access denied")
	ErrInvalidDateRange = errors.New("end date cannot be before start date")
)

// allowedImageExtensions mirrors the upload allow-list for event images.
var allowedImageExtensions = []string{"png", "jpg", "jpeg", "gif"}

type EventService struct {
	eventRepo *repository.EventRepository
	regRepo   *repository.RegistrationRepository
	storage   storage.StorageService

	// dashboardAllEvents switches the organizer dashboard from "own
	// events" to the system-wide list.
	dashboardAllEvents bool
}

func NewEventService(
	eventRepo *repository.EventRepository,
	regRepo *repository.RegistrationRepository,
	store storage.StorageService,
	dashboardAllEvents bool,
) *EventService {
	return &EventService{
		eventRepo:          eventRepo,
		regRepo:            regRepo,
		storage:            store,
		dashboardAllEvents: dashboardAllEvents,
	}
}

// CreateEvent validates the form before any image is stored, so a
// rejected request never leaves an orphaned upload behind.
func (s *EventService) CreateEvent(organizerID uint, req models.EventRequest, image *multipart.FileHeader) (*models.Event, error) {
	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	imageFile := models.DefaultEventImage
	if name, err := s.storeImage(image); err != nil {
		return nil, err
	} else if name != "" {
		imageFile = name
	}

	event := &models.Event{
		OrganizerID: organizerID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ImageFile:   imageFile,
	}

	return s.eventRepo.Create(event)
}

// UpdateEvent overwrites every descriptive field from the form; there
// are no partial-update semantics. The stored event is untouched when
// validation fails.
func (s *EventService) UpdateEvent(eventID, organizerID uint, req models.EventRequest, image *multipart.FileHeader) (*models.Event, error) {
	event, err := s.GetOwnedEvent(eventID, organizerID)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	event.Name = req.Name
	event.Description = req.Description
	event.StartDate = startDate
	event.EndDate = endDate
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime

	oldImage := event.ImageFile
	if name, err := s.storeImage(image); err != nil {
		return nil, err
	} else if name != "" {
		event.ImageFile = name
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	if event.ImageFile != oldImage {
		s.removeImage(oldImage)
	}

	return event, nil
}

// DeleteEvent removes the event and all of its registrations; no
// registration may outlive its event.
func (s *EventService) DeleteEvent(eventID, organizerID uint) error {
	event, err := s.GetOwnedEvent(eventID, organizerID)
	if err != nil {
		return err
	}

	if err := s.regRepo.DeleteByEventID(eventID); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(eventID); err != nil {
		return err
	}

	s.removeImage(event.ImageFile)
	return nil
}

// GetOwnedEvent loads an event and enforces organizer ownership. Every
// event-scoped organizer operation goes through here.
func (s *EventService) GetOwnedEvent(eventID, organizerID uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if event.OrganizerID != organizerID {
		return nil, ErrNotEventOwner
	}

	return event, nil
}

func (s *EventService) GetOrganizerDashboard(organizerID uint) ([]models.Event, error) {
	if s.dashboardAllEvents {
		return s.eventRepo.GetAll()
	}
	return s.eventRepo.GetByOrganizerID(organizerID)
}

// storeImage saves an uploaded image and returns the stored filename.
// Missing files and disallowed extensions return "", leaving the caller
// on the default/previous image, matching the form's lenient contract.
// Only storage failures are errors.
func (s *EventService) storeImage(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	if !utils.HasAllowedExtension(fh.Filename, allowedImageExtensions) {
		return "", nil
	}

	name := utils.SecureFilename(fh.Filename)
	if name == "" {
		// Nothing printable survived sanitizing; keep the extension,
		// invent the rest.
		name = utils.GenerateRandomString(10) + strings.ToLower(filepath.Ext(fh.Filename))
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := s.storage.Upload(name, src); err != nil {
		return "", err
	}

	return name, nil
}

// removeImage drops a stored file once no event references it. Best
// effort: the record change already stands, and the shared placeholder
// is never touched.
func (s *EventService) removeImage(name string) {
	if name == "" || name == models.DefaultEventImage {
		return
	}
	_ = s.storage.Delete(name)
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	endDate, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return startDate, endDate, nil
}
