package mailto

import (
	"errors"
	"net/url"
	"strings"
)

const scheme = "mailto:"

// Message is the content of a mail-client handoff link.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Build renders m as a mailto URI with subject and body query parameters.
// Components are escaped like encodeURIComponent: spaces become %20 and
// line breaks %0A, so mail clients never see a literal "+".
func Build(m Message) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString(escapeAddress(m.To))

	sep := byte('?')
	if m.Subject != "" {
		b.WriteByte(sep)
		b.WriteString("subject=")
		b.WriteString(Escape(m.Subject))
		sep = '&'
	}
	if m.Body != "" {
		b.WriteByte(sep)
		b.WriteString("body=")
		b.WriteString(Escape(m.Body))
	}

	return b.String()
}

// Parse is the inverse of Build.
func Parse(uri string) (Message, error) {
	if !strings.HasPrefix(strings.ToLower(uri), scheme) {
		return Message{}, ErrNotMailto
	}
	rest := uri[len(scheme):]

	to, rawQuery, _ := strings.Cut(rest, "?")
	addr, err := url.PathUnescape(to)
	if err != nil {
		return Message{}, errors.Join(ErrMalformed, err)
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Message{}, errors.Join(ErrMalformed, err)
	}

	return Message{
		To:      addr,
		Subject: query.Get("subject"),
		Body:    query.Get("body"),
	}, nil
}

// Escape percent-encodes s with the same unreserved set as encodeURIComponent:
// A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func Escape(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// escapeAddress keeps "@" readable while escaping everything that would
// break the URI structure.
func escapeAddress(addr string) string {
	return strings.ReplaceAll(Escape(addr), "%40", "@")
}
