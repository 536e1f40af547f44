package main

import (
	"errors"

	"github.com/dmitrymomot/contactkit/modules/contactform"
	"github.com/dmitrymomot/contactkit/pkg/config"
	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/cookie"
	"github.com/dmitrymomot/contactkit/pkg/email"
	"github.com/dmitrymomot/contactkit/pkg/httpserver"
	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/ratelimiter"
	"github.com/dmitrymomot/contactkit/pkg/redis"
	"github.com/dmitrymomot/contactkit/pkg/session"
)

type settings struct {
	Logger    logger.Config
	HTTP      httpserver.Config
	Email     email.Config
	Contact   contact.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config
	Session   session.Config
	Cookie    cookie.Config
	Site      contactform.Config
}

func loadSettings() (settings, error) {
	var s settings
	err := errors.Join(
		config.Load(&s.Logger),
		config.Load(&s.HTTP),
		config.Load(&s.Email),
		config.Load(&s.Contact),
		config.Load(&s.Redis),
		config.Load(&s.RateLimit),
		config.Load(&s.Session),
		config.Load(&s.Cookie),
		config.Load(&s.Site),
	)
	return s, err
}
