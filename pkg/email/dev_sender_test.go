package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/email"
)

func TestDevSender_SendTemplate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	sender := email.NewDevSender(dir)

	msg := validMessage()
	msg.Params["message"] = "<b>Hi</b>"
	require.NoError(t, sender.SendTemplate(context.Background(), msg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var jsonFile, htmlFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".json":
			jsonFile = filepath.Join(dir, e.Name())
		case ".html":
			htmlFile = filepath.Join(dir, e.Name())
		}
	}
	require.NotEmpty(t, jsonFile)
	require.NotEmpty(t, htmlFile)
	assert.Contains(t, filepath.Base(jsonFile), "_contact_form_submission_")

	raw, err := os.ReadFile(jsonFile)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, "template_xyz", rec["template_id"])
	assert.NotContains(t, rec, "PublicKey")

	html, err := os.ReadFile(htmlFile)
	require.NoError(t, err)
	assert.Contains(t, string(html), "&lt;b&gt;Hi&lt;/b&gt;")
	assert.Contains(t, string(html), "info@example.com")
}

func TestDevSender_SameSubjectSameInstant(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sender := email.NewDevSender(dir, email.WithDevClock(func() time.Time { return frozen }))

	require.NoError(t, sender.SendTemplate(context.Background(), validMessage()))
	require.NoError(t, sender.SendTemplate(context.Background(), validMessage()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Name(), "2025_03_01_120000.000_contact_form_submission_"), e.Name())
	}
}

func TestDevSender_InvalidMessage(t *testing.T) {
	t.Parallel()

	sender := email.NewDevSender(t.TempDir())
	err := sender.SendTemplate(context.Background(), email.TemplateMessage{To: "info@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     email.Config
		wantErr error
	}{
		{name: "default is emailjs", cfg: email.Config{}},
		{name: "emailjs", cfg: email.Config{Provider: "EmailJS"}},
		{name: "dev", cfg: email.Config{Provider: "dev", DevOutputDir: "tmp"}},
		{name: "postmark without tokens", cfg: email.Config{Provider: "postmark"}, wantErr: email.ErrInvalidConfig},
		{name: "unknown", cfg: email.Config{Provider: "smtp"}, wantErr: email.ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := email.New(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got email.TemplateMessage
	var s email.TemplateSender = email.SenderFunc(func(_ context.Context, m email.TemplateMessage) error {
		got = m
		return nil
	})
	require.NoError(t, s.SendTemplate(context.Background(), validMessage()))
	assert.Equal(t, "template_xyz", got.TemplateID)
}
