package contactform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/contactkit/handler"
	"github.com/dmitrymomot/contactkit/pkg/binder"
	"github.com/dmitrymomot/contactkit/pkg/broadcast"
	"github.com/dmitrymomot/contactkit/pkg/clientip"
	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/i18n"
	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/ratelimiter"
	"github.com/dmitrymomot/contactkit/pkg/session"
	"github.com/dmitrymomot/contactkit/pkg/toast"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// Toasts shows toasts and lists the visible ones of a session.
type Toasts interface {
	contact.Notifier
	Visible(ctx context.Context, session string) ([]toast.Toast, error)
}

// ToastStream subscribes to the toast events of a session.
type ToastStream interface {
	Subscribe(ctx context.Context, session string) broadcast.Subscriber[toast.Event]
}

// ErrSubmissionInProgress is the HTTP form of contact.ErrSubmissionInProgress.
var ErrSubmissionInProgress = handler.NewHTTPError(http.StatusConflict, "submission_in_progress")

// Service serves the contact page, the CTA modals, the submit endpoints and
// the toast stream.
type Service struct {
	cfg          Config
	pipeline     *contact.Pipeline
	toasts       Toasts
	stream       ToastStream
	views        *Views
	tr           *i18n.Translator
	messages     contact.Translator
	limiter      *ratelimiter.Bucket
	sessions     *session.Manager
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithViews replaces some or all of the default markup.
func WithViews(v *Views) Option {
	return func(s *Service) {
		s.views = v
	}
}

// WithTranslator localizes labels and messages.
func WithTranslator(tr *i18n.Translator) Option {
	return func(s *Service) {
		s.tr = tr
	}
}

// WithRateLimiter limits submits per client address.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Service) {
		s.limiter = b
	}
}

// WithSessions sets the visitor session manager. Without it sessions live in
// memory and are signed with a per-process secret.
func WithSessions(m *session.Manager) Option {
	return func(s *Service) {
		s.sessions = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates the contact module.
func NewService(cfg Config, pipeline *contact.Pipeline, toasts Toasts, stream ToastStream, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		pipeline: pipeline,
		toasts:   toasts,
		stream:   stream,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		m, err := ephemeralSessions(s.logger)
		if err != nil {
			panic("contactform: " + err.Error())
		}
		s.sessions = m
	}
	s.views = s.views.withDefaults()
	s.messages = MessageTranslator(s.tr)
	s.logger = s.logger.With(logger.Component("contactform"))
	s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
		ErrorPage: s.views.ErrorPage,
		Notify:    s.notifyError,
		Translate: s.translateError,
	})
	return s
}

// Handler returns the module routes.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "Datastar-Request"},
		AllowCredentials: !allowsAnyOrigin(s.cfg.AllowedOrigins),
		MaxAge:           300,
	}))
	r.Use(s.sessions.EnsureSession)

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Get("/toasts", handler.Wrap(s.toastStream,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Get("/cta/{kind}", handler.Wrap(s.openCTA,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		if s.cfg.MaxBodySize > 0 {
			r.Use(middleware.RequestSize(s.cfg.MaxBodySize))
		}
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, clientKey,
				ratelimiter.WithLimitedHandler(s.limited),
				ratelimiter.WithErrorHandler(s.limiterFailed),
			))
		}

		r.Post("/contact", handler.Wrap(s.submit,
			handler.WithBinders[binder.Values](binder.Form(), binder.JSON()),
			handler.WithErrorHandler[binder.Values](s.errorHandler),
		))
		r.Post("/cta/{kind}", handler.Wrap(s.submitCTA,
			handler.WithBinders[binder.Values](binder.Form(), binder.JSON()),
			handler.WithErrorHandler[binder.Values](s.errorHandler),
		))
	})

	return r
}

func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

func (s *Service) limited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

func (s *Service) limiterFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, err))
}

// text translates key for the request language, or returns def.
func (s *Service) text(ctx context.Context, key, def string) string {
	if s.tr == nil {
		return def
	}
	return s.tr.Td(i18n.GetLocale(ctx), key, def)
}

func (s *Service) translateError(ctx context.Context, key string) string {
	switch key {
	case handler.ErrTooManyRequests.Key:
		return s.messages(ctx, contact.MsgRateLimit)
	case ErrSubmissionInProgress.Key:
		return s.messages(ctx, contact.MsgInProgress)
	case "validation_failed":
		return s.messages(ctx, contact.MsgValidation)
	}
	return s.text(ctx, "errors."+key, key)
}

func (s *Service) notifyError(ctx handler.Context, info handler.ErrorInfo) error {
	level := toast.LevelError
	if info.StatusCode == http.StatusConflict {
		level = toast.LevelInfo
	}
	return s.toasts.Notify(ctx, session.KeyFromContext(ctx), info.Message, level)
}

var defaultLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"company": "Company",
	"phone":   "Phone",
	"message": "Message",
}

func inputType(role contact.Role) string {
	switch role {
	case contact.RoleEmail:
		return "email"
	case contact.RolePhone:
		return "tel"
	case contact.RoleMessage:
		return "textarea"
	}
	return "text"
}

func (s *Service) formParams(ctx context.Context, form contact.Form) FormParams {
	p := FormParams{
		ElementID:    "contact-form",
		Action:       "/contact",
		Signal:       "contact",
		SubmitLabel:  s.text(ctx, "contact.form.submit", "Send Message"),
		SendingLabel: s.text(ctx, "contact.form.sending", "Sending..."),
	}
	if form.Modal {
		p.ElementID = "cta-form"
		p.Action = "/cta/" + strings.TrimPrefix(form.ID, "cta-")
		p.Signal = "cta"
	} else {
		p.Title = s.text(ctx, "contact.form.title", form.Title)
		p.Description = s.text(ctx, "contact.form.description", form.Description)
	}

	for _, f := range form.Schema {
		def := defaultLabels[f.Name]
		if def == "" {
			def = f.Name
		}
		p.Fields = append(p.Fields, FieldParams{
			Name:     f.Name,
			Label:    s.text(ctx, "contact.field."+f.Name, def),
			Type:     inputType(f.Role),
			Required: f.Required,
			MaxLen:   f.MaxLen,
		})
	}
	return p
}

func (s *Service) modalParams(ctx context.Context, form contact.Form, kind contact.CTAKind) ModalParams {
	return ModalParams{
		Kind:        string(kind),
		Title:       s.text(ctx, "contact.cta."+string(kind), form.Title),
		Description: form.Description,
		CloseLabel:  s.text(ctx, "contact.form.close", "Close"),
		Form:        s.formParams(ctx, form),
	}
}

var ctaOrder = []struct {
	kind  contact.CTAKind
	label string
}{
	{contact.CTADemo, "Book a Demo"},
	{contact.CTACall, "Schedule a Call"},
	{contact.CTAQuote, "Get a Quote"},
}

func (s *Service) pageParams(ctx context.Context, modal *ModalParams) PageParams {
	ctas := make([]CTALink, 0, len(ctaOrder))
	for _, c := range ctaOrder {
		ctas = append(ctas, CTALink{Kind: string(c.kind), Label: s.text(ctx, "contact.cta."+string(c.kind), c.label)})
	}
	return PageParams{
		Title:    s.cfg.SiteName,
		Lang:     i18n.GetLocale(ctx),
		Features: s.cfg.Features,
		Form:     s.formParams(ctx, contact.ContactForm()),
		CTAs:     ctas,
		Modal:    modal,
	}
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(s.pageParams(ctx, nil)))
}

// resolveCTA maps the kind path parameter to its form. A nil response
// means the form was found.
func resolveCTA(r *http.Request) (contact.Form, contact.CTAKind, handler.Response) {
	kind := contact.CTAKind(chi.URLParam(r, "kind"))
	form, err := contact.NewCTAForm(kind)
	switch {
	case errors.Is(err, contact.ErrCTARedirect):
		return form, kind, handler.Redirect(contact.QuoteRedirect)
	case err != nil:
		return form, kind, handler.Error(handler.ErrNotFound)
	}
	return form, kind, nil
}

func (s *Service) openCTA(ctx handler.Context, _ struct{}) handler.Response {
	form, kind, resp := resolveCTA(ctx.Request())
	if resp != nil {
		return resp
	}

	modal := s.modalParams(ctx, form, kind)
	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.Modal(modal),
			handler.WithTarget("#"+ModalRootID),
			handler.WithPatchMode(handler.PatchInner),
		)
	}
	return handler.Templ(s.views.Page(s.pageParams(ctx, &modal)))
}

func (s *Service) submit(ctx handler.Context, values binder.Values) handler.Response {
	return s.handleSubmit(ctx, contact.ContactForm(), values)
}

func (s *Service) submitCTA(ctx handler.Context, values binder.Values) handler.Response {
	form, _, resp := resolveCTA(ctx.Request())
	if resp != nil {
		return resp
	}
	return s.handleSubmit(ctx, form, values)
}

// SubmitResult is the JSON answer of a submit.
type SubmitResult struct {
	Outcome contact.Outcome       `json:"outcome"`
	Mailto  string                `json:"mailto,omitempty"`
	State   contact.RecorderState `json:"state"`
}

// SentRedirect is where browsers without JavaScript land after delivery.
const SentRedirect = "/?sent=1#contact"

func (s *Service) handleSubmit(ctx handler.Context, form contact.Form, values binder.Values) handler.Response {
	visitor := session.KeyFromContext(ctx)
	r := ctx.Request()

	if handler.IsDataStar(r) {
		surface := newStreamSurface(ctx.SSE(), s.formParams(ctx, form), s.views)
		_, err := s.pipeline.Handle(ctx, visitor, form, values.Map(), surface).Await()
		if err != nil && !validator.IsValidationError(err) {
			return handler.Error(submitError(err))
		}
		return handler.Streamed()
	}

	rec := &contact.Recorder{}
	outcome, err := s.pipeline.Handle(ctx, visitor, form, values.Map(), rec).Await()
	if err != nil {
		return handler.Error(submitError(err))
	}

	state := rec.State()
	if handler.WantsJSON(r) {
		return handler.JSON(SubmitResult{Outcome: outcome, Mailto: state.Mailto, State: state})
	}
	if outcome == contact.OutcomeFallbackInvoked {
		return handler.Redirect(state.Mailto)
	}
	return handler.Redirect(SentRedirect)
}

func submitError(err error) error {
	switch {
	case errors.Is(err, contact.ErrSubmissionInProgress):
		return errors.Join(ErrSubmissionInProgress, err)
	case errors.Is(err, contact.ErrInvalidRequest):
		return errors.Join(handler.ErrUnprocessableEntity, err)
	}
	return err
}

func (s *Service) toastStream(ctx handler.Context, _ struct{}) handler.Response {
	visitor := session.KeyFromContext(ctx)

	return handler.SSE(func(stream handler.StreamContext) error {
		sub := s.stream.Subscribe(stream, visitor)
		defer sub.Close()

		visible, err := s.toasts.Visible(stream, visitor)
		if err != nil {
			return err
		}
		if err := stream.SendComponent(s.views.ToastList(visible),
			handler.WithTarget("#"+ToastContainerID),
			handler.WithPatchMode(handler.PatchInner),
		); err != nil {
			return err
		}

		// A toast shown between Subscribe and Visible is in the snapshot and
		// also arrives as a shown event.
		rendered := make(map[string]struct{}, len(visible))
		for _, t := range visible {
			rendered[t.ID] = struct{}{}
		}

		events := sub.Receive(stream)
		for {
			select {
			case <-stream.Done():
				return nil
			case msg, ok := <-events:
				if !ok {
					return nil
				}
				if _, seen := rendered[msg.Data.Toast.ID]; seen && msg.Data.Phase == toast.PhaseShown {
					delete(rendered, msg.Data.Toast.ID)
					continue
				}
				if err := s.sendToast(stream, msg.Data); err != nil {
					return err
				}
			}
		}
	})
}

func (s *Service) sendToast(stream handler.StreamContext, ev toast.Event) error {
	switch ev.Phase {
	case toast.PhaseShown:
		return stream.SendComponent(s.views.Toast(ev.Toast),
			handler.WithTarget("#"+ToastContainerID),
			handler.WithPatchMode(handler.PatchAppend),
		)
	case toast.PhaseFading:
		return stream.SendComponent(s.views.Toast(ev.Toast))
	case toast.PhaseRemoved:
		return stream.Remove("#" + toastElementID(ev.Toast))
	}
	return nil
}
