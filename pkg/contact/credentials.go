package contact

import "strings"

// Placeholder values shipped in sample configuration.
const (
	PlaceholderServiceID  = "YOUR_SERVICE_ID"
	PlaceholderTemplateID = "YOUR_TEMPLATE_ID"
	PlaceholderPublicKey  = "YOUR_PUBLIC_KEY"
)

// Credentials address the hosted email template.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Unconfigured means automated delivery is off and every submission
// goes through the mail client handoff.
var Unconfigured = Credentials{}

// NewCredentials trims the values. If any of them is empty or still a
// placeholder the result is Unconfigured.
func NewCredentials(serviceID, templateID, publicKey string) Credentials {
	c := Credentials{
		ServiceID:  strings.TrimSpace(serviceID),
		TemplateID: strings.TrimSpace(templateID),
		PublicKey:  strings.TrimSpace(publicKey),
	}
	if unset(c.ServiceID, PlaceholderServiceID) ||
		unset(c.TemplateID, PlaceholderTemplateID) ||
		unset(c.PublicKey, PlaceholderPublicKey) {
		return Unconfigured
	}
	return c
}

func unset(v, placeholder string) bool {
	return v == "" || v == placeholder
}

// Configured reports whether delivery can be attempted.
func (c Credentials) Configured() bool {
	return c != Unconfigured
}
