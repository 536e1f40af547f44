package contact

import "time"

// Config holds pipeline configuration loaded from the environment.
type Config struct {
	ServiceID  string `env:"EMAIL_SERVICE_ID"`
	TemplateID string `env:"EMAIL_TEMPLATE_ID"`
	PublicKey  string `env:"EMAIL_PUBLIC_KEY"`

	Destination        string        `env:"CONTACT_EMAIL" envDefault:"info@example.com"`
	SuccessDelay       time.Duration `env:"CONTACT_SUCCESS_DELAY" envDefault:"1500ms"`
	FallbackResetDelay time.Duration `env:"CONTACT_FALLBACK_RESET_DELAY" envDefault:"1s"`
	GuardTTL           time.Duration `env:"CONTACT_GUARD_TTL" envDefault:"2m"`
}

// Credentials returns the normalized delivery credentials.
func (c Config) Credentials() Credentials {
	return NewCredentials(c.ServiceID, c.TemplateID, c.PublicKey)
}
