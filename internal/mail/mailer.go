// Package mail implements the SMTP relay behind the contact form.
package mail

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

var ErrNotConfigured = errors.New("smtp relay is not configured")

// Mailer sends plain-text mail through an authenticated SMTP server.
type Mailer struct {
	host     string
	port     string
	from     string
	password string
}

// New creates a Mailer. Configuration is validated at send time so the
// server can boot without SMTP credentials in development.
func New(host, port, from, password string) *Mailer {
	return &Mailer{host: host, port: port, from: from, password: password}
}

// Send delivers a message to the given recipient. replyTo is surfaced in
// the headers so the operator can answer the original sender directly.
func (m *Mailer) Send(to, replyTo, subject, body string) error {
	if m.host == "" || m.port == "" || m.from == "" || m.password == "" {
		return ErrNotConfigured
	}

	headers := []string{
		"From: " + m.from,
		"Reply-To: " + replyTo,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}
	message := []byte(strings.Join(headers, "\r\n"))

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := m.host + ":" + m.port

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		// Implicit TLS refused; fall back to STARTTLS.
		slog.Debug("tls dial failed, falling back to starttls", "addr", addr, "error", err)
		return m.sendStartTLS(auth, addr, to, message)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finishing message: %w", err)
	}

	return nil
}

func (m *Mailer) sendStartTLS(auth smtp.Auth, addr, to string, message []byte) error {
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
