package cookie

import "strings"

// Config holds the cookie signing keys and the default attributes.
type Config struct {
	// Secrets is a comma separated list. The first one signs, all of them verify.
	Secrets string `env:"COOKIE_SECRETS" envDefault:""`
	Domain  string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

func (c Config) secrets() []string {
	var out []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NewFromConfig creates a Manager from cfg. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	var base []Option
	if cfg.Domain != "" {
		base = append(base, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		base = append(base, WithSecure(true))
	}
	return New(cfg.secrets(), append(base, opts...)...)
}
