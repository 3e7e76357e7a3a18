package service

import "monjoel_backend/internal/settings/repository"

func textPtr(s string) *string { return &s }

// defaultSettings are installed by the init endpoint and the seed command.
// Keys already present keep their stored values.
var defaultSettings = []repository.Setting{
	{Key: "phone_number", Value: "01 23 45 67 89", Label: "Numéro de téléphone",
		Description: textPtr("Numéro affiché sur tout le site"), Category: "contact", Type: "phone"},
	{Key: "phone_number_raw", Value: "+33123456789", Label: "Numéro de téléphone (format international)",
		Description: textPtr("Format pour les liens tel:"), Category: "contact", Type: "phone"},
	{Key: "email", Value: "contact@monjoel.fr", Label: "Email de contact",
		Description: textPtr("Email affiché sur le site"), Category: "contact", Type: "email"},
	{Key: "email_support", Value: "support@monjoel.fr", Label: "Email support",
		Description: textPtr("Email pour le support client"), Category: "contact", Type: "email"},

	{Key: "site_name", Value: "Mon Joël", Label: "Nom du site",
		Description: textPtr("Nom de la marque"), Category: "general", Type: "text"},
	{Key: "tagline", Value: "Votre serrurier intelligent disponible 24h/24", Label: "Slogan",
		Description: textPtr("Phrase d'accroche principale"), Category: "general", Type: "text"},
	{Key: "intervention_time", Value: "30", Label: "Temps d'intervention (minutes)",
		Description: textPtr("Délai moyen affiché aux clients"), Category: "general", Type: "number"},
	{Key: "reviews_count", Value: "2500", Label: "Nombre d'avis",
		Description: textPtr("Affiché dans les badges de confiance"), Category: "general", Type: "number"},
	{Key: "reviews_rating", Value: "4.9", Label: "Note moyenne",
		Description: textPtr("Note sur 5 étoiles"), Category: "general", Type: "number"},
	{Key: "interventions_count", Value: "15000", Label: "Nombre d'interventions",
		Description: textPtr("Total des interventions réalisées"), Category: "general", Type: "number"},

	{Key: "meta_title", Value: "Mon Joël - Serrurier intelligent avec diagnostic IA", Label: "Meta Title (SEO)",
		Description: textPtr("Titre par défaut pour les moteurs de recherche"), Category: "seo", Type: "text"},
	{Key: "meta_description", Value: "Service de serrurerie innovant avec diagnostic IA. Devis instantané, tarifs transparents, intervention rapide 24h/24.", Label: "Meta Description (SEO)",
		Description: textPtr("Description par défaut pour les moteurs de recherche"), Category: "seo", Type: "textarea"},

	{Key: "facebook_url", Value: "", Label: "Facebook",
		Description: textPtr("URL de la page Facebook"), Category: "social", Type: "url"},
	{Key: "instagram_url", Value: "", Label: "Instagram",
		Description: textPtr("URL du profil Instagram"), Category: "social", Type: "url"},
}

// DefaultSettings returns a copy of the built-in settings, used by the seed
// command.
func DefaultSettings() []repository.Setting {
	out := make([]repository.Setting, len(defaultSettings))
	copy(out, defaultSettings)
	return out
}
