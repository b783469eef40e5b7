package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobsethiopia/jobsethiopia-go/internal/mail"
	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
)

// ContactService relays contact-form submissions to the site inbox.
type ContactService struct {
	mailer *mail.Mailer
	to     string
}

// NewContactService creates a new ContactService. to is the receiving
// inbox for contact messages.
func NewContactService(mailer *mail.Mailer, to string) *ContactService {
	return &ContactService{mailer: mailer, to: to}
}

// Send validates and relays one contact message.
func (s *ContactService) Send(req model.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(req.Message) == "" {
		return ErrMessageRequired
	}

	subject := fmt.Sprintf("New Message from %s", req.Name)
	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s", req.Name, req.Email, req.Message)

	if err := s.mailer.Send(s.to, req.Email, subject, body); err != nil {
		slog.Error("contact relay failed", "error", err)
		return ErrRelayFailed
	}

	return nil
}
