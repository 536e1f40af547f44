package mailto

import "errors"

var (
	ErrNotMailto = errors.New("mailto: not a mailto URI")
	ErrMalformed = errors.New("mailto: malformed URI")
)
