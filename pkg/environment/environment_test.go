package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"PROD", environment.Production},
		{" stage ", environment.Staging},
		{"staging", environment.Staging},
		{"dev", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := environment.Parse(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == environment.Production, got.IsProduction())
			assert.Equal(t, tt.want == environment.Development, got.IsDevelopment())
		})
	}
}
