package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when nothing else matches.
const DefaultLanguage = "en"

// Headers longer than this are truncated before parsing.
const maxAcceptLanguageLength = 4096

type weightedLang struct {
	lang string
	q    float64
}

// parseAcceptLanguage returns the header's tags, lowercased and ordered by
// quality. Malformed q values count as 1.
func parseAcceptLanguage(header string) []weightedLang {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
				q = f
			}
		}
		if q == 0 {
			continue
		}
		langs = append(langs, weightedLang{lang: tag, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}

// ParseAcceptLanguage picks the best supported language for header.
// Exact tags win over base-language matches (en-US falls back to en).
func ParseAcceptLanguage(header string, supported []string, def string) string {
	if header == "" || len(supported) == 0 {
		return def
	}

	normalized := make([]string, len(supported))
	for i, l := range supported {
		normalized[i] = strings.ToLower(l)
	}

	langs := parseAcceptLanguage(header)
	for _, l := range langs {
		if slices.Contains(normalized, l.lang) {
			return l.lang
		}
	}
	for _, l := range langs {
		if base, _, ok := strings.Cut(l.lang, "-"); ok && slices.Contains(normalized, base) {
			return base
		}
	}

	return def
}
