package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
}

type diagnosticTicketEmailData struct {
	baseEmailData
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

type contactMessageEmailData struct {
	baseEmailData
	Name      string
	FromEmail string
	Subject   string
}

type partnerApplicationEmailData struct {
	baseEmailData
	CompanyName    string
	ApplicantEmail string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
