package service

import (
	"errors"

	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"github.com/campusfest/campus-events-backend/pkg/email"
	"gorm.io/gorm"
)

type RegistrationService struct {
	regRepo      *repository.RegistrationRepository
	eventRepo    *repository.EventRepository
	userRepo     *repository.UserRepository
	emailService *email.EmailService
}

func NewRegistrationService(
	regRepo *repository.RegistrationRepository,
	eventRepo *repository.EventRepository,
	userRepo *repository.UserRepository,
	emailService *email.EmailService,
) *RegistrationService {
	return &RegistrationService{
		regRepo:      regRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Register signs the student up for the event. Returns false without
// error when a registration already exists; registering twice is an
// informational outcome, not a failure. The composite unique index
// turns a concurrent duplicate into the same outcome.
func (s *RegistrationService) Register(studentID, eventID uint) (bool, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return false, ErrEventNotFound
	}

	if _, err := s.regRepo.GetByStudentAndEvent(studentID, eventID); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	reg := &models.Registration{
		StudentID: studentID,
		EventID:   eventID,
	}
	if err := s.regRepo.Create(reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	if student, err := s.userRepo.GetByID(studentID); err == nil {
		go s.emailService.SendRegistrationConfirmation(student.Email, student.FullName, event.Name)
	}

	return true, nil
}

// Unregister removes the student's registration. Returns false without
// error when there was nothing to remove.
func (s *RegistrationService) Unregister(studentID, eventID uint) (bool, error) {
	reg, err := s.regRepo.GetByStudentAndEvent(studentID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.regRepo.Delete(reg.ID); err != nil {
		return false, err
	}
	return true, nil
}

// StudentDashboard assembles the catalogue plus the student's
// registered-event ID set driving the registered/not-registered state.
func (s *RegistrationService) StudentDashboard(studentID uint) (*models.StudentDashboard, error) {
	events, err := s.eventRepo.GetAll()
	if err != nil {
		return nil, err
	}

	regs, err := s.regRepo.GetByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.EventID)
	}

	registered, err := s.eventRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	return &models.StudentDashboard{
		Events:             events,
		RegisteredEventIDs: ids,
		RegisteredEvents:   registered,
	}, nil
}
