// Package email delivers contact messages through a template-based provider.
//
// All providers implement TemplateSender:
//   - NewEmailJSClient posts to the EmailJS REST API (service id, template id, public key)
//   - NewPostmarkClient sends a Postmark templated email, TemplateID being the template alias
//   - NewDevSender writes JSON and an HTML preview to a local directory
//
// New picks one from Config.Provider:
//
//	sender, err := email.New(cfg)
//	err = sender.SendTemplate(ctx, email.TemplateMessage{
//		ServiceID:  "service_x",
//		TemplateID: "template_y",
//		PublicKey:  "public",
//		To:         "info@example.com",
//		Params:     map[string]string{"from_name": "Jane"},
//	})
//
// Delivery failures are joined with ErrFailedToSendEmail; invalid input yields ErrInvalidParams.
// Senders never retry.
package email
