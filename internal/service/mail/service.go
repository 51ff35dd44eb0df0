package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crewlog/crewlog-backend/internal/pkg/email"
	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r ContactRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "Message is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Service struct {
	emailService email.EmailService
}

func NewMailService(emailService email.EmailService) *Service {
	return &Service{emailService: emailService}
}

// SendContact relays a website contact-form submission to the team inbox.
func (s *Service) SendContact(ctx context.Context, req ContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.emailService.SendContact(req.Name, req.Email, req.Message); err != nil {
		slog.ErrorContext(ctx, "contact email delivery failed", slog.Any("error", err))
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
