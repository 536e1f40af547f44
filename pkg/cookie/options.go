package cookie

import "net/http"

// Attributes are the cookie attributes written by a Manager.
type Attributes struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

type Option func(*Attributes)

func WithPath(path string) Option {
	return func(a *Attributes) { a.Path = path }
}

func WithDomain(domain string) Option {
	return func(a *Attributes) { a.Domain = domain }
}

func WithMaxAge(seconds int) Option {
	return func(a *Attributes) { a.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(a *Attributes) { a.Secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(a *Attributes) { a.HttpOnly = httpOnly }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(a *Attributes) { a.SameSite = sameSite }
}

// with returns a copy of base with opts applied.
func (base Attributes) with(opts []Option) Attributes {
	out := base
	for _, opt := range opts {
		opt(&out)
	}
	return out
}
