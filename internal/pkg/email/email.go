package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/crewlog/crewlog-backend/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService defines the interface for sending emails
type EmailService interface {
	// SendContact forwards a website contact-form submission to the
	// configured recipients.
	SendContact(name, from, message string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type contactEmailData struct {
	Name    string
	Email   string
	Message string
}

// SendContact forwards a contact-form submission.
func (s *emailServiceImpl) SendContact(name, from, message string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "contact.html", contactEmailData{
		Name:    name,
		Email:   from,
		Message: message,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(s.cfg.Recipients, "New contact request", body.String())
}

func (s *emailServiceImpl) sendHTML(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	headers := []string{
		"From: " + s.cfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
