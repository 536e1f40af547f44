package i18n

import "errors"

var (
	ErrFailedToReadCatalog  = errors.New("i18n: failed to read catalog")
	ErrFailedToParseCatalog = errors.New("i18n: failed to parse catalog")
	ErrNoTranslations       = errors.New("i18n: no translations found")
	ErrInvalidCatalog       = errors.New("i18n: invalid catalog structure")
)
