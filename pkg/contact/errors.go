package contact

import "errors"

var (
	ErrInvalidRequest       = errors.New("contact: name and email are required")
	ErrSubmissionInProgress = errors.New("contact: submission already in progress")
	ErrUnknownCTA           = errors.New("contact: unknown call to action")
	ErrCTARedirect          = errors.New("contact: call to action redirects to the contact section")
	ErrMissingDestination   = errors.New("contact: destination email is not configured")
	ErrMissingNotifier      = errors.New("contact: notifier is required")
)
