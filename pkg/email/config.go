package email

import "time"

// Provider names accepted by New.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Config holds delivery provider configuration.
// Only the fields of the selected provider are checked.
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"emailjs"`

	EmailJSEndpoint    string        `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	EmailJSAccessToken string        `env:"EMAILJS_ACCESS_TOKEN"`
	EmailJSOrigin      string        `env:"EMAILJS_ORIGIN"`
	EmailJSTimeout     time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"0s"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`

	DevOutputDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
