package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor picks the request language. An empty result means "unknown".
type LangExtractor func(r *http.Request) string

// RFC 5646 recommends at most 35 characters per tag.
const maxLangCodeLength = 35

// NewLangExtractor checks the "lang" query parameter, then the "lang"
// cookie, then Accept-Language. Only supported languages are returned.
func NewLangExtractor(supported []string) LangExtractor {
	normalized := make([]string, len(supported))
	for i, l := range supported {
		normalized[i] = strings.ToLower(l)
	}

	accept := func(lang string) string {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if slices.Contains(normalized, lang) {
			return lang
		}
		if base, _, ok := strings.Cut(lang, "-"); ok && slices.Contains(normalized, base) {
			return base
		}
		return ""
	}

	return func(r *http.Request) string {
		if lang := accept(r.URL.Query().Get("lang")); lang != "" {
			return lang
		}
		if c, err := r.Cookie("lang"); err == nil {
			if lang := accept(c.Value); lang != "" {
				return lang
			}
		}
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), normalized, "")
	}
}

// Middleware stores the extracted language in the request context.
// A nil extractor or an empty result yields DefaultLanguage.
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extract != nil {
				lang = extract(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
