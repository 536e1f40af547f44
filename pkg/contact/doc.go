// Package contact implements the contact form submission pipeline.
//
// A Form carries an explicit Schema that maps input names to roles. Validate
// turns raw input into a Request. Pipeline.Submit then runs a small state
// machine:
//
//	start --dispatch--> attempting --succeed--> delivered
//	  |                     |
//	  +--dispatch--> fallback <--fail--+
//
// Dispatch only reaches attempting when the pipeline has credentials and a
// deliverer. Otherwise, and after any delivery error, the submission falls
// back to a mailto: handoff built by package mailto. Each step is a
// continuation of an async.Future, and the UI is driven through the Surface
// and Notifier interfaces so the pipeline does not depend on HTTP.
//
// Usage:
//
//	p, err := contact.NewPipeline(cfg, toasts, contact.WithDeliverer(sender))
//	if err != nil {
//		return err
//	}
//	outcome, err := p.Handle(ctx, session, contact.ContactForm(), values, surface).Await()
//
// A session can have one submission per form in flight. A concurrent submit
// fails with ErrSubmissionInProgress until the first one settled.
package contact
