package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// postmarkAPI is the subset of the Postmark client the sender uses.
type postmarkAPI interface {
	SendTemplatedEmail(ctx context.Context, email postmark.TemplatedEmail) (postmark.EmailResponse, error)
}

type postmarkClient struct {
	api    postmarkAPI
	sender string
}

// NewPostmarkClient creates a Postmark-backed template sender.
// TemplateID of each message is used as the Postmark template alias.
func NewPostmarkClient(cfg Config) (TemplateSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		api:    postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		sender: cfg.SenderEmail,
	}, nil
}

func (c *postmarkClient) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	model := make(map[string]any, len(msg.Params))
	for k, v := range msg.Params {
		model[k] = v
	}

	resp, err := c.api.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		TemplateAlias: msg.TemplateID,
		TemplateModel: model,
		From:          c.sender,
		To:            msg.To,
		ReplyTo:       msg.Params["reply_to"],
		Tag:           "contact",
		TrackOpens:    true,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
