package repository

import (
	"github.com/campusfest/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(reg *models.Registration) error {
	return r.db.Create(reg).Error
}

func (r *RegistrationRepository) GetByStudentAndEvent(studentID, eventID uint) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Where("student_id = ? AND event_id = ?", studentID, eventID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByEventID loads an event's registrations with each student
// resolved, ordered by registration time for stable exports.
func (r *RegistrationRepository) GetByEventID(eventID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Preload("Student").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}

func (r *RegistrationRepository) GetByStudentID(studentID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Where("student_id = ?", studentID).Find(&regs).Error
	return regs, err
}

func (r *RegistrationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Registration{}, id).Error
}

func (r *RegistrationRepository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.Registration{}).Error
}
