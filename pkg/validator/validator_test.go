package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty collection message", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "name", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "is invalid"})

		assert.Equal(t, []string{"email", "name"}, errs.Fields())
		assert.True(t, errs.Has("name"))
		assert.False(t, errs.Has("phone"))
		assert.Equal(t, []string{"is required", "is invalid"}, errs.Get("email"))
		assert.Equal(t, "validation failed: email: is required; name: is required; email: is invalid", errs.Error())
	})

	t.Run("extract through wrapping", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.Required("name", " "))
		wrapped := fmt.Errorf("submit: %w", err)

		require.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
		assert.Equal(t, []string{"name"}, validator.ExtractValidationErrors(wrapped).Fields())
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "filled", value: "Jane", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "spaces only", value: "   ", ok: false},
		{name: "tabs and newlines", value: "\t\n", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.Required("name", tt.value))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			errs := validator.ExtractValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Equal(t, "validation.required", errs[0].TranslationKey)
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		ok    bool
	}{
		{"j@x.com", true},
		{"jane.doe+tag@example.co.uk", true},
		{"", false},
		{"plain", false},
		{"@x.com", false},
		{"j@x", false},
		{"j@.com", false},
		{"j@x.com.", false},
		{"j@x..com", false},
		{"Jane <j@x.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidEmail("email", tt.value))
			assert.Equal(t, tt.ok, err == nil)
		})
	}
}

func TestMaxLenAndWhen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxLen("name", "żółw", 4)))
	assert.Error(t, validator.Apply(validator.MaxLen("name", strings.Repeat("a", 5), 4)))

	assert.NoError(t, validator.Apply(validator.When(false, validator.ValidEmail("email", "nope"))))
	assert.Error(t, validator.Apply(validator.When(true, validator.ValidEmail("email", "nope"))))
}
