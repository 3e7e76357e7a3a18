package email

const (
	subjectDiagnosticTicketFmt       = "Nouvelle demande d'intervention - %s"
	subjectDiagnosticTicketUrgentFmt = "URGENT : nouvelle demande d'intervention - %s"
	subjectContactMessageFmt         = "Nouveau message de contact : %s"
	subjectPartnerApplicationFmt     = "Nouvelle candidature artisan : %s"
)
