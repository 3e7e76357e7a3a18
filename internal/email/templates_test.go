package email

import (
	"strings"
	"testing"
)

func TestRenderDiagnosticTicketTemplate(t *testing.T) {
	content, err := renderEmailTemplate("diagnostic_ticket.html", diagnosticTicketEmailData{
		baseEmailData: baseEmailData{
			Title:   "Nouvelle demande d'intervention",
			Heading: "Nouvelle demande d'intervention",
		},
		RequestID:    "22222222-2222-2222-2222-222222222222",
		ProblemType:  "porte-claquee",
		City:         "Paris",
		Zip:          "75011",
		ContactName:  "Jean Dupont",
		ContactPhone: "+33612345678",
		Urgent:       true,
		PriceLabel:   "115 € - 141 €",
		EtaLabel:     "20 - 40 min",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"porte-claquee", "75011 Paris", "Jean Dupont", "115 € - 141 €", "urgente"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected rendered email to contain %q", want)
		}
	}
}

func TestRenderDiagnosticTicketTemplateOmitsUrgencyBanner(t *testing.T) {
	content, err := renderEmailTemplate("diagnostic_ticket.html", diagnosticTicketEmailData{
		baseEmailData: baseEmailData{Title: "t", Heading: "h"},
		City:          "Lyon",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(content, "urgente") {
		t.Fatalf("expected no urgency banner for a normal request")
	}
}

func TestRenderContactMessageTemplate(t *testing.T) {
	content, err := renderEmailTemplate("contact_message.html", contactMessageEmailData{
		baseEmailData: baseEmailData{Title: "t", Heading: "h"},
		Name:          "Marie Laurent",
		FromEmail:     "marie@example.fr",
		Subject:       "Question",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(content, "marie@example.fr") {
		t.Fatalf("expected rendered email to contain the sender address")
	}
}

func TestRenderPartnerApplicationTemplate(t *testing.T) {
	content, err := renderEmailTemplate("partner_application.html", partnerApplicationEmailData{
		baseEmailData:  baseEmailData{Title: "t", Heading: "h"},
		CompanyName:    "Serrurerie Martin",
		ApplicantEmail: "contact@serrurerie-martin.fr",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(content, "Serrurerie Martin") {
		t.Fatalf("expected rendered email to contain the company name")
	}
}

func TestNewSenderDisabledReturnsNoop(t *testing.T) {
	sender, err := NewSender(disabledEmailConfig{})
	if err != nil {
		t.Fatalf("new sender: %v", err)
	}
	if _, ok := sender.(NoopSender); !ok {
		t.Fatalf("expected NoopSender when email is disabled, got %T", sender)
	}
}

type disabledEmailConfig struct{}

func (disabledEmailConfig) GetEmailEnabled() bool       { return false }
func (disabledEmailConfig) GetSMTPHost() string         { return "" }
func (disabledEmailConfig) GetSMTPPort() int            { return 0 }
func (disabledEmailConfig) GetSMTPUsername() string     { return "" }
func (disabledEmailConfig) GetSMTPPassword() string     { return "" }
func (disabledEmailConfig) GetEmailFromName() string    { return "" }
func (disabledEmailConfig) GetEmailFromAddress() string { return "" }
func (disabledEmailConfig) GetTeamEmail() string        { return "" }
