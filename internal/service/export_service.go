package service

import (
	"bytes"
	"encoding/csv"

	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
)

// csvHeader is the fixed first row of every participant export.
var csvHeader = []string{"Name", "Student ID", "Email"}

type ExportService struct {
	regRepo *repository.RegistrationRepository
}

func NewExportService(regRepo *repository.RegistrationRepository) *ExportService {
	return &ExportService{regRepo: regRepo}
}

// ParticipantRows resolves an event's registrations to display rows.
// Ownership is enforced by the caller via EventService.GetOwnedEvent.
func (s *ExportService) ParticipantRows(eventID uint) ([]models.ParticipantRow, error) {
	regs, err := s.regRepo.GetByEventID(eventID)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ParticipantRow, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, models.ParticipantRow{
			Name:      reg.Student.FullName,
			StudentID: reg.Student.StudentNumber(),
			Email:     reg.Student.Email,
		})
	}
	return rows, nil
}

// ParticipantsCSV renders the registrant list as a CSV document with
// CRLF line endings and standard quoting.
func (s *ExportService) ParticipantsCSV(eventID uint) ([]byte, error) {
	rows, err := s.ParticipantRows(eventID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Name, row.StudentID, row.Email}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
