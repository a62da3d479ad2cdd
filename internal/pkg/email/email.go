package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/clubvine/clubvine-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending invitation emails
type EmailService interface {
	SendClubInvite(to, inviterName, refCode, code, expiresAt string) error
	SendMemberInvite(kind, to, clubName, inviterName, refCode, code, expiresAt string) error
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

type inviteEmailData struct {
	ClubName    string
	InviterName string
	RefCode     string
	Code        string
	ExpiresAt   string
}

// SendClubInvite sends the platform invitation email to a club
func (s *emailServiceImpl) SendClubInvite(to, inviterName, refCode, code, expiresAt string) error {
	data := inviteEmailData{
		InviterName: inviterName,
		RefCode:     refCode,
		Code:        code,
		ExpiresAt:   expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "club_invite.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "You are invited to join Clubvine", body.String())
}

// SendMemberInvite sends the affiliation invitation email, picking the
// template by member kind.
func (s *emailServiceImpl) SendMemberInvite(kind, to, clubName, inviterName, refCode, code, expiresAt string) error {
	var tmplName string
	switch kind {
	case "player":
		tmplName = "player_invite.html"
	case "supporter":
		tmplName = "supporter_invite.html"
	case "company":
		tmplName = "company_invite.html"
	default:
		return fmt.Errorf("no invite template for kind %q", kind)
	}

	data := inviteEmailData{
		ClubName:    clubName,
		InviterName: inviterName,
		RefCode:     refCode,
		Code:        code,
		ExpiresAt:   expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, tmplName, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("%s invited you to join on Clubvine", clubName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
