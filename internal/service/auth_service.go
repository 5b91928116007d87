package service

import (
	"errors"

	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"github.com/campusfest/campus-events-backend/pkg/bcrypt"
	"github.com/campusfest/campus-events-backend/pkg/email"
	jwtPkg "github.com/campusfest/campus-events-backend/pkg/jwt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrStudentIDRequired  = errors.New("student ID is required for participants")
	ErrStudentIDTaken     = errors.New("this student ID is already registered")
	ErrWrongOrganizerCode = errors.New("wrong organizer code")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	userRepo     *repository.UserRepository
	emailService *email.EmailService

	// organizerCode is the shared enrollment secret for organizer
	// signups, supplied by config.
	organizerCode string
}

func NewAuthService(userRepo *repository.UserRepository, emailService *email.EmailService, organizerCode string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		emailService:  emailService,
		organizerCode: organizerCode,
	}
}

// Signup creates an account. Participants must bring an unused student
// ID; organizers must present the enrollment secret. The unique indexes
// on email and unique_id back these checks against concurrent signups.
func (s *AuthService) Signup(req models.SignupRequest) (*models.User, error) {
	role := models.UserRole(req.Role)

	var uniqueID *string
	if role == models.RoleParticipant {
		if req.UniqueID == "" {
			return nil, ErrStudentIDRequired
		}
		taken, err := s.userRepo.UniqueIDExists(req.UniqueID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrStudentIDTaken
		}
		uniqueID = &req.UniqueID
	}

	if role == models.RoleOrganizer {
		if req.SecretCode != s.organizerCode {
			return nil, ErrWrongOrganizerCode
		}
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		UniqueID: uniqueID,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateSignupError(req)
		}
		return nil, err
	}

	go s.emailService.SendWelcomeEmail(user.Email, user.FullName)

	return user, nil
}

// duplicateSignupError decides which unique index a lost signup race
// tripped. A participant race can land on the student-ID index as well
// as the email one.
func (s *AuthService) duplicateSignupError(req models.SignupRequest) error {
	if exists, err := s.userRepo.EmailExists(req.Email); err == nil && exists {
		return ErrEmailTaken
	}
	if req.UniqueID != "" {
		if taken, err := s.userRepo.UniqueIDExists(req.UniqueID); err == nil && taken {
			return ErrStudentIDTaken
		}
	}
	return ErrEmailTaken
}

// Login verifies credentials and issues a session token. Failures are
// deliberately indistinguishable between unknown email and bad password.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
