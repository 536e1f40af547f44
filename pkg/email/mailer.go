package email

import (
	"context"
	"fmt"
	"strings"
)

// TemplateSender delivers a message rendered by the provider from a stored template.
type TemplateSender interface {
	SendTemplate(ctx context.Context, msg TemplateMessage) error
}

// TemplateMessage addresses a provider-side template.
// ServiceID and PublicKey are only meaningful to providers that use them.
type TemplateMessage struct {
	ServiceID  string            `json:"service_id"`
	TemplateID string            `json:"template_id"`
	PublicKey  string            `json:"-"`
	To         string            `json:"to"`
	Params     map[string]string `json:"params"`
}

// Validate checks the fields every provider needs.
func (m TemplateMessage) Validate() error {
	if strings.TrimSpace(m.TemplateID) == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidParams)
	}
	return nil
}

// SenderFunc adapts a function to TemplateSender.
type SenderFunc func(ctx context.Context, msg TemplateMessage) error

func (f SenderFunc) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	return f(ctx, msg)
}
