package email

import (
	"context"

	"monjoel_backend/platform/config"
)

// DiagnosticTicketData describes a quoted intervention request for the team
// notification email.
type DiagnosticTicketData struct {
	RequestID    string
	ProblemType  string
	City         string
	Zip          string
	ContactName  string
	ContactPhone string
	Urgent       bool
	PriceLabel   string
	EtaLabel     string
}

// Sender delivers transactional emails to the operations team.
type Sender interface {
	SendDiagnosticTicketEmail(ctx context.Context, toEmail string, data DiagnosticTicketData) error
	SendContactMessageEmail(ctx context.Context, toEmail, name, fromEmail, subject string) error
	SendPartnerApplicationEmail(ctx context.Context, toEmail, companyName, applicantEmail string) error
}

type NoopSender struct{}

func (NoopSender) SendDiagnosticTicketEmail(ctx context.Context, toEmail string, data DiagnosticTicketData) error {
	return nil
}

func (NoopSender) SendContactMessageEmail(ctx context.Context, toEmail, name, fromEmail, subject string) error {
	return nil
}

func (NoopSender) SendPartnerApplicationEmail(ctx context.Context, toEmail, companyName, applicantEmail string) error {
	return nil
}

// NewSender returns the configured sender, or a no-op when email delivery is
// disabled.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	), nil
}
