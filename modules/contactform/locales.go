package contactform

import (
	"context"
	"embed"
	"io/fs"

	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Locales returns the bundled message catalogs.
func Locales() fs.FS {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewTranslator loads the bundled catalogs.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslatorFS(ctx, Locales(), opts...)
}

// MessageTranslator resolves pipeline toast keys in the request language,
// falling back to the built-in English text.
func MessageTranslator(tr *i18n.Translator) contact.Translator {
	if tr == nil {
		return func(_ context.Context, key string) string { return contact.DefaultMessage(key) }
	}
	return func(ctx context.Context, key string) string {
		return tr.Td(i18n.GetLocale(ctx), key, contact.DefaultMessage(key))
	}
}
