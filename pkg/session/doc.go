// Package session gives anonymous visitors a server side session.
//
// The Manager creates a Session with a random ID and an opaque token, keeps
// it in a Store and sends the token through a Transport, a signed cookie by
// default. Other components scope visitor state by Session.Key, never by the
// token.
//
//	cookies, err := cookie.New([]string{secret})
//	if err != nil {
//		return err
//	}
//	sessions, err := session.New(
//		session.WithCookieManager(cookies),
//		session.WithStore(session.NewRedisStore(rdb, "contact:session:")),
//	)
//	if err != nil {
//		return err
//	}
//	r.Use(sessions.EnsureSession)
//
// Handlers read the session back with FromContext or KeyFromContext.
//
// Sessions expire after Config.IdleTimeout without activity and never live
// longer than Config.MaxLifetime. The idle expiry is extended at most once per
// Config.ActivityUpdateThreshold.
package session
