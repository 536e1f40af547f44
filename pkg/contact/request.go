package contact

import (
	"strings"

	"github.com/dmitrymomot/contactkit/pkg/mailto"
)

// Placeholders used when an optional value is missing.
const (
	NotProvided        = "Not provided"
	NoMessage          = "No message provided"
	DefaultSubject     = "Contact Request"
	DefaultRequestType = "General Inquiry"
)

// Request is one contact submission. It lives only for the duration of the
// submission and is never stored.
type Request struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Message     string `json:"message,omitempty"`
	Subject     string `json:"subject,omitempty"`
	RequestType string `json:"request_type,omitempty"`
}

func (r *Request) set(role Role, v string) {
	switch role {
	case RoleName:
		r.Name = v
	case RoleEmail:
		r.Email = v
	case RolePhone:
		r.Phone = v
	case RoleCompany:
		r.Company = v
	case RoleMessage:
		r.Message = v
	}
}

// Deliverable reports whether name and email are present.
func (r Request) Deliverable() bool {
	return strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Email) != ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// TemplateParams are the variables handed to the delivery template.
func (r Request) TemplateParams(to string) map[string]string {
	return map[string]string{
		"to_email":     to,
		"from_name":    r.Name,
		"from_email":   r.Email,
		"phone":        orDefault(r.Phone, NotProvided),
		"company":      orDefault(r.Company, NotProvided),
		"message":      orDefault(r.Message, NoMessage),
		"subject":      orDefault(r.Subject, DefaultSubject),
		"request_type": orDefault(r.RequestType, DefaultRequestType),
		"reply_to":     r.Email,
	}
}

// FallbackBody is the plain text body of the mail client handoff.
func (r Request) FallbackBody() string {
	var b strings.Builder
	b.WriteString("Name: " + r.Name + "\n")
	b.WriteString("Email: " + r.Email + "\n")
	b.WriteString("Phone: " + orDefault(r.Phone, NotProvided) + "\n")
	b.WriteString("Company: " + orDefault(r.Company, NotProvided) + "\n")
	b.WriteString("Request Type: " + orDefault(r.RequestType, DefaultRequestType) + "\n\n")
	b.WriteString("Message:\n" + orDefault(r.Message, NoMessage))
	return b.String()
}

// Mailto builds the handoff URI addressed to to.
func (r Request) Mailto(to string) string {
	return mailto.Build(mailto.Message{
		To:      to,
		Subject: orDefault(r.Subject, DefaultSubject),
		Body:    r.FallbackBody(),
	})
}
