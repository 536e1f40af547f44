package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type emailJSClient struct {
	endpoint    string
	accessToken string
	origin      string
	httpClient  *http.Client
}

// EmailJSOption configures the EmailJS client.
type EmailJSOption func(*emailJSClient)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) EmailJSOption {
	return func(e *emailJSClient) {
		if c != nil {
			e.httpClient = c
		}
	}
}

// NewEmailJSClient creates a sender for the EmailJS REST API.
// The public key travels with each message, so one client serves any account.
func NewEmailJSClient(cfg Config, opts ...EmailJSOption) (TemplateSender, error) {
	endpoint := cfg.EmailJSEndpoint
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return nil, fmt.Errorf("%w: EmailJS endpoint must be an http(s) URL", ErrInvalidConfig)
	}

	c := &emailJSClient{
		endpoint:    endpoint,
		accessToken: cfg.EmailJSAccessToken,
		origin:      cfg.EmailJSOrigin,
		httpClient:  &http.Client{Timeout: cfg.EmailJSTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// SendTemplate posts the message once. Any non-200 answer is a failure.
func (c *emailJSClient) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.ServiceID == "" || msg.PublicKey == "" {
		return fmt.Errorf("%w: service id and public key are required", ErrInvalidParams)
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      msg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         msg.PublicKey,
		AccessToken:    c.accessToken,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.origin != "" {
		// EmailJS checks the origin against the account's allowed domains.
		req.Header.Set("Origin", c.origin)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if resp.StatusCode != http.StatusOK {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("emailjs error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body))),
		)
	}
	return nil
}
