package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	form := contact.ContactForm()

	tests := []struct {
		name       string
		values     map[string]string
		wantFields []string
	}{
		{
			name:       "empty name and email",
			values:     map[string]string{"message": "hello"},
			wantFields: []string{"name", "email"},
		},
		{
			name:       "whitespace only",
			values:     map[string]string{"name": "   ", "email": "\t\n "},
			wantFields: []string{"name", "email"},
		},
		{
			name:       "missing email",
			values:     map[string]string{"name": "Jane"},
			wantFields: []string{"email"},
		},
		{
			name:       "malformed email",
			values:     map[string]string{"name": "Jane", "email": "jane@localhost"},
			wantFields: []string{"email"},
		},
		{
			name:       "name too long",
			values:     map[string]string{"name": strings.Repeat("a", 201), "email": "j@x.com"},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := form.Validate(tt.values)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrValidationFailed)
			assert.Equal(t, tt.wantFields, validator.ExtractValidationErrors(err).Fields())
		})
	}
}

func TestForm_ValidateSanitizes(t *testing.T) {
	t.Parallel()

	req, err := contact.ContactForm().Validate(map[string]string{
		"name":     "  Jane\x00 Doe \n",
		"email":    " jane@example.com ",
		"company":  "Acme\r\nInc",
		"message":  "  line one\r\nline two  ",
		"unknown":  "ignored",
		"password": "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, contact.Request{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Company:     "Acme Inc",
		Message:     "line one\nline two",
		Subject:     "Contact Form Submission",
		RequestType: "Contact Form",
	}, req)
}

func TestNewCTAForm(t *testing.T) {
	t.Parallel()

	t.Run("titles", func(t *testing.T) {
		t.Parallel()

		for kind, title := range map[contact.CTAKind]string{
			contact.CTADemo: "Book a Demo",
			contact.CTACall: "Schedule a Call",
		} {
			form, err := contact.NewCTAForm(kind)
			require.NoError(t, err)
			assert.True(t, form.Modal)
			assert.Equal(t, title, form.Title)

			req, err := form.Validate(map[string]string{"name": "Jane", "email": "j@x.com"})
			require.NoError(t, err)
			assert.Equal(t, title, req.Subject)
			assert.Equal(t, title, req.RequestType)
		}
	})

	t.Run("quote redirects", func(t *testing.T) {
		t.Parallel()
		_, err := contact.NewCTAForm(contact.CTAQuote)
		assert.ErrorIs(t, err, contact.ErrCTARedirect)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := contact.NewCTAForm("pricing")
		assert.ErrorIs(t, err, contact.ErrUnknownCTA)
	})
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s := contact.DefaultSchema()
	assert.Equal(t, []string{"name", "email", "company", "phone", "message"}, s.Names())

	f, ok := s.Field(contact.RoleEmail)
	require.True(t, ok)
	assert.True(t, f.Required)

	f, ok = s.Field(contact.RolePhone)
	require.True(t, ok)
	assert.False(t, f.Required)
}
