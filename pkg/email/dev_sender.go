package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender writes messages to disk instead of delivering them:
// a JSON file with the raw message and an HTML preview.
type DevSender struct {
	dir string
	now func() time.Time
}

// DevOption configures a DevSender.
type DevOption func(*DevSender)

// WithDevClock replaces the clock used for file names and timestamps.
func WithDevClock(now func() time.Time) DevOption {
	return func(d *DevSender) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDevSender creates a development sender writing into dir.
func NewDevSender(dir string, opts ...DevOption) *DevSender {
	d := &DevSender{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type devRecord struct {
	Timestamp string `json:"timestamp"`
	TemplateMessage
}

func (d *DevSender) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	// The suffix keeps two messages with one subject in the same millisecond apart.
	base := fmt.Sprintf("%s_%s_%s",
		now.Format("2006_01_02_150405.000"),
		sanitizeFilename(msg.Params["subject"]),
		uuid.NewString()[:8],
	)

	data, err := json.MarshalIndent(devRecord{Timestamp: now.Format(time.RFC3339), TemplateMessage: msg}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	html, err := Render(ctx, Preview(msg))
	if err != nil {
		return fmt.Errorf("%w: failed to render preview: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
