package contactform

// Features toggles optional page decorations. They change markup only.
type Features struct {
	Loader      bool `env:"FEATURE_LOADER" envDefault:"true"`
	FloatingCTA bool `env:"FEATURE_FLOATING_CTA" envDefault:"true"`
	Particles   bool `env:"FEATURE_PARTICLES" envDefault:"false"`
}

// Config configures the HTTP side of the contact module.
type Config struct {
	SiteName       string   `env:"SITE_NAME" envDefault:"Contact"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxBodySize    int64    `env:"CONTACT_MAX_BODY_SIZE" envDefault:"65536"`
	Features       Features
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		SiteName:       "Contact",
		AllowedOrigins: []string{"*"},
		MaxBodySize:    64 << 10,
		Features:       Features{Loader: true, FloatingCTA: true},
	}
}
