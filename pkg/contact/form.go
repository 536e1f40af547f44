package contact

import (
	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// Form describes where a submission comes from.
type Form struct {
	ID          string
	Title       string
	Description string
	Subject     string
	RequestType string
	// Modal forms close their dialog once the submission settles.
	Modal  bool
	Schema Schema
}

// ContactForm is the main page form.
func ContactForm() Form {
	return Form{
		ID:          "contact",
		Title:       "Get in Touch",
		Subject:     "Contact Form Submission",
		RequestType: "Contact Form",
		Schema:      DefaultSchema(),
	}
}

// CTAKind identifies a call-to-action button.
type CTAKind string

const (
	CTADemo  CTAKind = "demo"
	CTACall  CTAKind = "call"
	CTAQuote CTAKind = "quote"
)

// QuoteRedirect is where the quote CTA sends the visitor instead of opening a modal.
const QuoteRedirect = "/#contact"

var ctaForms = map[CTAKind]struct {
	title, description string
}{
	CTADemo: {"Book a Demo", "Schedule a personalized demo of our solutions and see how we can transform your business."},
	CTACall: {"Schedule a Call", "Book a consultation call with our experts to discuss your specific needs and requirements."},
}

// NewCTAForm returns the modal form for kind. Subject and request type both
// carry the modal title. The quote CTA has no modal and yields ErrCTARedirect.
func NewCTAForm(kind CTAKind) (Form, error) {
	if kind == CTAQuote {
		return Form{}, ErrCTARedirect
	}
	cta, ok := ctaForms[kind]
	if !ok {
		return Form{}, ErrUnknownCTA
	}
	return Form{
		ID:          "cta-" + string(kind),
		Title:       cta.title,
		Description: cta.description,
		Subject:     cta.title,
		RequestType: cta.title,
		Modal:       true,
		Schema:      DefaultSchema(),
	}, nil
}

var (
	sanitizeLine = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
	sanitizeText = sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.RemoveControlChars, sanitizer.Trim)
)

// Validate sanitizes values against the form schema and checks required
// fields, email shape and lengths. The returned error is a
// validator.ValidationErrors listing every failing field by input name.
func (f Form) Validate(values map[string]string) (Request, error) {
	req := Request{Subject: f.Subject, RequestType: f.RequestType}
	rules := make([]validator.Rule, 0, len(f.Schema)*3)

	for _, field := range f.Schema {
		raw := values[field.Name]
		var v string
		if field.Role == RoleMessage {
			v = sanitizer.Apply(raw, sanitizeText)
		} else {
			v = sanitizer.Apply(raw, sanitizeLine)
		}

		if field.Required {
			rules = append(rules, validator.RequiredString(field.Name, v))
		}
		if field.Role == RoleEmail {
			rules = append(rules, validator.When(v != "", validator.ValidEmail(field.Name, v)))
		}
		if field.MaxLen > 0 {
			rules = append(rules, validator.MaxLen(field.Name, v, field.MaxLen))
		}

		req.set(field.Role, v)
	}

	if err := validator.Apply(rules...); err != nil {
		return Request{}, err
	}
	return req, nil
}
