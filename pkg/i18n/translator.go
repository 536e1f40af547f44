package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Translator resolves dotted message keys against loaded catalogs.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	catalogs    Catalogs
	defaultLang string
	logMissing  bool
	logger      *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language consulted when the requested one
// lacks a key. Default "en".
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every key that had to fall back.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}

// NewTranslator creates a translator from catalogs.
func NewTranslator(catalogs Catalogs, opts ...Option) (*Translator, error) {
	if len(catalogs) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, tree := range catalogs {
		if lang == "" || tree == nil {
			return nil, fmt.Errorf("%w: empty language %q", ErrInvalidCatalog, lang)
		}
	}

	t := &Translator{
		catalogs:    catalogs,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// NewTranslatorFS loads YAML catalogs from fsys and creates a translator.
func NewTranslatorFS(ctx context.Context, fsys fs.FS, opts ...Option) (*Translator, error) {
	catalogs, err := LoadFS(ctx, fsys)
	if err != nil {
		return nil, err
	}
	t, err := NewTranslator(catalogs, opts...)
	if err != nil {
		return nil, err
	}
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the sorted language codes.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// HasTranslation reports whether lang defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(strings.ToLower(lang), key)
	return ok
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	tree, ok := t.catalogs[lang]
	if !ok {
		return "", false
	}

	var current any = tree
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = m[part]; !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

// Td translates key for lang, trying the default language next and
// returning def when neither has it. Args are name/value pairs that fill
// %{name} placeholders.
func (t *Translator) Td(lang, key, def string, args ...string) string {
	lang = strings.ToLower(lang)
	if s, ok := t.lookup(lang, key); ok {
		return format(s, args)
	}
	if lang != t.defaultLang {
		if s, ok := t.lookup(t.defaultLang, key); ok {
			return format(s, args)
		}
	}

	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return format(def, args)
}

// T is Td with the key itself as the default.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Tc translates key for the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format substitutes %{name} placeholders. Unknown names are left as is.
func format(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
