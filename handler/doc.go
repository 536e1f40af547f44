// Package handler provides typed HTTP handlers that answer DataStar, JSON and
// plain browser clients from the same code.
//
// A HandlerFunc receives a bound request value and returns a Response.
// Wrap turns it into an http.HandlerFunc, running the binders, the handler,
// any decorators and the error handler:
//
//	submit := func(ctx handler.Context, values binder.Values) handler.Response {
//		if handler.WantsJSON(ctx.Request()) {
//			return handler.JSON(result)
//		}
//		return handler.Templ(views.Form(params), handler.WithTarget("#contact-form"))
//	}
//
//	r.Post("/contact", handler.Wrap(submit,
//		handler.WithBinders[binder.Values](binder.Form(), binder.JSON()),
//		handler.WithErrorHandler[binder.Values](errorHandler),
//	))
//
// # DataStar
//
// Requests accepting text/event-stream are DataStar requests. Templ
// responses are sent to them as element patches, Redirect as a client side
// redirect. Context.SSE gives handlers the event stream for pushing several
// patches and signal updates during one request; such handlers return
// Streamed. SSE serves long lived streams.
//
// # Errors
//
// HTTPError carries a status code and a message key. NewErrorHandler
// classifies errors with ClassifyError and answers with a toast, the JSON
// error envelope or an error page.
package handler
