package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"boatlog-backend/internal/config"
	apperrors "boatlog-backend/internal/errors"

	"github.com/mailgun/mailgun-go/v4"
)

const crewInviteTmpl = `
<p>{{ .OwnerName }} has invited you to join the crew of <b>{{ .BoatName }}</b>.</p>
<p>Sign in with this email address to accept the invitation.</p>`

// MailerService sends transactional email through Mailgun
type MailerService struct {
	mg   mailgun.Mailgun
	from string
}

// NewMailerService creates a mailer from application config. Returns nil when
// Mailgun is not configured; callers treat a nil mailer as "invites recorded
// but not emailed".
func NewMailerService(cfg *config.Config) *MailerService {
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		return nil
	}
	return &MailerService{
		mg:   mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		from: cfg.MailFrom,
	}
}

// SendCrewInvite emails a crew invitation for a boat
func (m *MailerService) SendCrewInvite(ctx context.Context, toName, toEmail, ownerName, boatName string) error {
	if m == nil {
		return apperrors.ErrMailerNotConfigured
	}

	t := template.Must(template.New("invite").Parse(crewInviteTmpl))
	var tpl bytes.Buffer
	if err := t.Execute(&tpl, struct {
		OwnerName string
		BoatName  string
	}{OwnerName: ownerName, BoatName: boatName}); err != nil {
		return fmt.Errorf("failed to render invite email: %w", err)
	}

	subject := fmt.Sprintf("Crew invitation: %s", boatName)
	msg := m.mg.NewMessage(m.from, subject, tpl.String(), fmt.Sprintf("%s <%s>", toName, toEmail))
	msg.SetHtml(tpl.String())

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	return nil
}
