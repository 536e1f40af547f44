package email

import (
	"fmt"
	"strings"
)

// New returns the sender selected by cfg.Provider.
func New(cfg Config) (TemplateSender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderEmailJS, "":
		return NewEmailJSClient(cfg)
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
