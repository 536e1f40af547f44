package contact

import (
	"context"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// Message keys passed to the Translator.
const (
	MsgValidation = "contact.toast.validation"
	MsgInvalid    = "contact.toast.invalid"
	MsgDelivered  = "contact.toast.delivered"
	MsgFailed     = "contact.toast.failed"
	MsgFallback   = "contact.toast.fallback"
	MsgInProgress = "contact.toast.in_progress"
	MsgRateLimit  = "contact.toast.rate_limited"
)

var defaultMessages = map[string]string{
	MsgValidation: "Please fill in all required fields",
	MsgInvalid:    "Please check the highlighted fields",
	MsgDelivered:  "Thank you! We'll contact you soon.",
	MsgFailed:     "Failed to send message. Please try again or contact us directly.",
	MsgFallback:   "Opening your email client...",
	MsgInProgress: "Your message is already being sent.",
	MsgRateLimit:  "Too many attempts. Please wait a moment and try again.",
}

// Translator resolves a message key for the request in ctx.
type Translator func(ctx context.Context, key string) string

// DefaultMessage returns the English text for key, or key itself when unknown.
func DefaultMessage(key string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}
	return key
}

// validationMessage picks the toast for a failed validation: the required
// fields text when something is missing, a generic one otherwise.
func validationMessage(errs validator.ValidationErrors) string {
	for _, e := range errs {
		if e.TranslationKey == "validation.required" {
			return MsgValidation
		}
	}
	return MsgInvalid
}

func defaultTranslator(_ context.Context, key string) string {
	return DefaultMessage(key)
}
