package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendDiagnosticTicketEmail(ctx context.Context, toEmail string, data DiagnosticTicketData) error {
	subjectFmt := subjectDiagnosticTicketFmt
	if data.Urgent {
		subjectFmt = subjectDiagnosticTicketUrgentFmt
	}
	subject := fmt.Sprintf(subjectFmt, data.City)

	content, err := renderEmailTemplate("diagnostic_ticket.html", diagnosticTicketEmailData{
		baseEmailData: baseEmailData{
			Title:      "Nouvelle demande d'intervention",
			Heading:    "Nouvelle demande d'intervention",
			Subheading: "Un diagnostic vient d'être réalisé sur le site.",
		},
		RequestID:    data.RequestID,
		ProblemType:  data.ProblemType,
		City:         data.City,
		Zip:          data.Zip,
		ContactName:  data.ContactName,
		ContactPhone: data.ContactPhone,
		Urgent:       data.Urgent,
		PriceLabel:   data.PriceLabel,
		EtaLabel:     data.EtaLabel,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendContactMessageEmail(ctx context.Context, toEmail, name, fromEmail, subject string) error {
	content, err := renderEmailTemplate("contact_message.html", contactMessageEmailData{
		baseEmailData: baseEmailData{
			Title:   "Nouveau message de contact",
			Heading: "Nouveau message de contact",
		},
		Name:      name,
		FromEmail: fromEmail,
		Subject:   subject,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectContactMessageFmt, subject), content)
}

func (s *SMTPSender) SendPartnerApplicationEmail(ctx context.Context, toEmail, companyName, applicantEmail string) error {
	content, err := renderEmailTemplate("partner_application.html", partnerApplicationEmailData{
		baseEmailData: baseEmailData{
			Title:   "Nouvelle candidature artisan",
			Heading: "Nouvelle candidature artisan",
		},
		CompanyName:    companyName,
		ApplicantEmail: applicantEmail,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectPartnerApplicationFmt, companyName), content)
}

var _ Sender = (*SMTPSender)(nil)
