package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/campusfest/campus-events-backend/internal/config"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// EmailService sends transactional mail through Resend. When no API key
// is configured every send becomes a logged no-op, so local setups and
// tests run without credentials.
type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
	enabled      bool
}

func NewEmailService(cfg config.EmailConfig, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(cfg.ResendAPIKey),
		from:         cfg.FromAddress,
		fromName:     cfg.FromName,
		templatesDir: "pkg/email/templates",
		logger:       logger,
		enabled:      cfg.ResendAPIKey != "",
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	}

	return s.send(email, "Welcome to Campus Events!", "welcome.html", templateData)
}

func (s *EmailService) SendRegistrationConfirmation(email, fullName, eventName string) error {
	templateData := map[string]interface{}{
		"FullName":  fullName,
		"EventName": eventName,
		"Year":      time.Now().Year(),
	}

	subject := fmt.Sprintf("You are registered for %s", eventName)
	return s.send(email, subject, "registration_confirmation.html", templateData)
}

func (s *EmailService) send(to, subject, templateName string, data map[string]interface{}) error {
	if !s.enabled {
		s.logger.Debug("email disabled, skipping send",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	html, err := s.parseTemplate(templateName, data)
	if err != nil {
		s.logger.Error("failed to parse email template",
			zap.String("template", templateName),
			zap.Error(err),
		)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("id", resp.Id),
	)
	return nil
}

func (s *EmailService) parseTemplate(name string, data map[string]interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, name))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
