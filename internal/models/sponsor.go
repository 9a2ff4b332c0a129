package models

// SponsorView is a sponsor decorated for display.
type SponsorView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	TierBadge string `json:"tierBadge"`
	Phone     string `json:"phone"`
	Website   string `json:"website"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

// ReferenceOptions bundles what the wizard screens offer as suggestions.
type ReferenceOptions struct {
	Venues []string `json:"venues"`
	Cities []string `json:"cities"`
}
