package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contactkit/pkg/async"
	"github.com/dmitrymomot/contactkit/pkg/email"
	"github.com/dmitrymomot/contactkit/pkg/inflight"
	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/statemachine"
	"github.com/dmitrymomot/contactkit/pkg/toast"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// SleepFunc pauses a submission between steps.
type SleepFunc func(ctx context.Context, d time.Duration)

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Pipeline validates contact submissions, attempts delivery and falls back
// to a mail client handoff. It is safe for concurrent use.
type Pipeline struct {
	cfg       Config
	creds     Credentials
	deliverer email.TemplateSender
	notifier  Notifier
	guard     inflight.Guard
	translate Translator
	sleep     SleepFunc
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDeliverer sets the delivery backend. Without one every submission falls back.
func WithDeliverer(d email.TemplateSender) Option {
	return func(p *Pipeline) {
		p.deliverer = d
	}
}

// WithGuard replaces the process-local submit guard.
func WithGuard(g inflight.Guard) Option {
	return func(p *Pipeline) {
		if g != nil {
			p.guard = g
		}
	}
}

// WithTranslator sets how toast texts are resolved.
func WithTranslator(t Translator) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.translate = t
		}
	}
}

// WithSleep replaces the delay between steps. Tests use it to run without waiting.
func WithSleep(fn SleepFunc) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.sleep = fn
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline creates a pipeline delivering to cfg.Destination.
func NewPipeline(cfg Config, notifier Notifier, opts ...Option) (*Pipeline, error) {
	if notifier == nil {
		return nil, ErrMissingNotifier
	}
	cfg.Destination = strings.TrimSpace(cfg.Destination)
	if err := validator.Apply(validator.ValidEmail("destination", cfg.Destination)); err != nil {
		return nil, errors.Join(ErrMissingDestination, err)
	}

	p := &Pipeline{
		cfg:       cfg,
		creds:     cfg.Credentials(),
		notifier:  notifier,
		guard:     inflight.NewMemoryGuard(),
		translate: defaultTranslator,
		sleep:     sleepContext,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("contact"))

	return p, nil
}

// Configured reports whether submissions attempt automated delivery.
// When false every submission goes straight to the mail client handoff.
func (p *Pipeline) Configured() bool {
	return p.creds.Configured() && p.deliverer != nil
}

// Destination is the address receiving contact requests.
func (p *Pipeline) Destination() string {
	return p.cfg.Destination
}

// Handle validates values against form and submits the result. On
// validation failure the failing fields are flagged, an error toast is shown
// and the future resolves to OutcomeValidationFailed with the validation error.
func (p *Pipeline) Handle(ctx context.Context, session string, form Form, values map[string]string, surface Surface) *async.Future[Outcome] {
	if surface == nil {
		surface = NopSurface{}
	}

	req, err := form.Validate(values)
	if err != nil {
		errs := validator.ExtractValidationErrors(err)
		fields := errs.Fields()
		p.effect(ctx, "flag_fields", func() error { return surface.FlagFields(ctx, fields) })
		p.notify(ctx, session, validationMessage(errs), toast.LevelError)
		return async.Rejected(OutcomeValidationFailed, err)
	}

	return p.Submit(ctx, session, form, req, surface)
}

type submission struct {
	id      string
	session string
	form    Form
	req     Request
	surface Surface
	machine *statemachine.Machine[State, Event]
	failure error
	outcome Outcome
	log     *slog.Logger
}

// Submit runs one submission. The steps are detached from ctx cancellation
// and always run to completion. A second submission for the same session and
// form fails with ErrSubmissionInProgress until the first one settled.
func (p *Pipeline) Submit(ctx context.Context, session string, form Form, req Request, surface Surface) *async.Future[Outcome] {
	ctx = context.WithoutCancel(ctx)
	if surface == nil {
		surface = NopSurface{}
	}

	if !req.Deliverable() {
		return async.Rejected(OutcomeValidationFailed, ErrInvalidRequest)
	}

	key := session + ":" + form.ID
	if err := p.guard.Acquire(ctx, key); err != nil {
		if errors.Is(err, inflight.ErrInProgress) {
			return async.Rejected(Outcome(""), ErrSubmissionInProgress)
		}
		return async.Rejected(Outcome(""), fmt.Errorf("contact: acquire submit guard: %w", err))
	}

	sub := &submission{
		id:      uuid.NewString(),
		session: session,
		form:    form,
		req:     req,
		surface: surface,
	}
	sub.log = p.logger.With(
		logger.SubmissionID(sub.id),
		logger.Session(session),
		logger.Form(form.ID),
	)
	sub.machine = p.newMachine(sub)

	sub.log.InfoContext(ctx, "submission started", slog.Bool("configured", p.Configured()))
	p.effect(ctx, "set_submitting", func() error { return surface.SetSubmitting(ctx, true) })

	dispatched := async.Async(ctx, sub, p.dispatch)
	attempted := async.Then(ctx, dispatched, p.attempt)
	settled := async.Then(ctx, attempted, p.settle)

	return async.Async(ctx, settled, func(ctx context.Context, f *async.Future[*submission]) (Outcome, error) {
		defer p.release(ctx, key)

		sub, err := f.Await()
		if err != nil {
			p.logger.ErrorContext(ctx, "submission aborted", logger.Error(err))
			p.effect(ctx, "set_submitting", func() error { return surface.SetSubmitting(ctx, false) })
			return Outcome(""), err
		}

		sub.log.InfoContext(ctx, "submission settled", logger.Outcome(string(sub.outcome)))
		return sub.outcome, nil
	})
}

func (p *Pipeline) newMachine(sub *submission) *statemachine.Machine[State, Event] {
	return statemachine.MustNew(StateStart,
		statemachine.WithTransition(StateStart, StateAttempting, EventDispatch,
			statemachine.WithGuard(func(context.Context, any) bool {
				return p.Configured()
			}),
		),
		statemachine.WithTransition(StateStart, StateFallback, EventDispatch),
		statemachine.WithTransition(StateAttempting, StateDelivered, EventSucceed),
		statemachine.WithTransition(StateAttempting, StateFallback, EventFail),
		statemachine.WithHook(func(ctx context.Context, from, to State, event Event) {
			sub.log.DebugContext(ctx, "submission transition",
				logger.Transition(string(from), string(to)),
				logger.Event(string(event)),
			)
		}),
	)
}

func (p *Pipeline) dispatch(ctx context.Context, sub *submission) (*submission, error) {
	if err := sub.machine.Fire(ctx, EventDispatch, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// attempt calls the deliverer once. There is no retry: any error moves the
// submission to the fallback.
func (p *Pipeline) attempt(ctx context.Context, sub *submission) (*submission, error) {
	if sub.machine.Current() != StateAttempting {
		return sub, nil
	}

	start := time.Now()
	err := p.deliverer.SendTemplate(ctx, email.TemplateMessage{
		ServiceID:  p.creds.ServiceID,
		TemplateID: p.creds.TemplateID,
		PublicKey:  p.creds.PublicKey,
		To:         p.cfg.Destination,
		Params:     sub.req.TemplateParams(p.cfg.Destination),
	})
	if err != nil {
		sub.failure = err
		sub.log.WarnContext(ctx, "delivery failed, falling back to mail client",
			logger.Error(err),
			logger.Duration(time.Since(start)),
		)
		return sub, sub.machine.Fire(ctx, EventFail, sub)
	}

	sub.log.DebugContext(ctx, "delivery accepted", logger.Duration(time.Since(start)))
	return sub, sub.machine.Fire(ctx, EventSucceed, sub)
}

func (p *Pipeline) settle(ctx context.Context, sub *submission) (*submission, error) {
	switch state := sub.machine.Current(); state {
	case StateDelivered:
		p.delivered(ctx, sub)
	case StateFallback:
		p.fallback(ctx, sub)
	default:
		return nil, fmt.Errorf("contact: submission settled in unexpected state %q", state)
	}
	return sub, nil
}

func (p *Pipeline) delivered(ctx context.Context, sub *submission) {
	p.sleep(ctx, p.cfg.SuccessDelay)
	p.notify(ctx, sub.session, MsgDelivered, toast.LevelSuccess)
	p.finishForm(ctx, sub)
	sub.outcome = OutcomeDelivered
}

func (p *Pipeline) fallback(ctx context.Context, sub *submission) {
	if sub.failure != nil {
		p.notify(ctx, sub.session, MsgFailed, toast.LevelError)
	}

	uri := sub.req.Mailto(p.cfg.Destination)
	p.effect(ctx, "open_mailto", func() error { return sub.surface.OpenMailto(ctx, uri) })
	p.notify(ctx, sub.session, MsgFallback, toast.LevelInfo)

	p.sleep(ctx, p.cfg.FallbackResetDelay)
	p.finishForm(ctx, sub)
	sub.outcome = OutcomeFallbackInvoked
}

func (p *Pipeline) finishForm(ctx context.Context, sub *submission) {
	p.effect(ctx, "reset_form", func() error { return sub.surface.ResetForm(ctx) })
	p.effect(ctx, "set_submitting", func() error { return sub.surface.SetSubmitting(ctx, false) })
	if sub.form.Modal {
		p.effect(ctx, "close_modal", func() error { return sub.surface.CloseModal(ctx) })
	}
}

func (p *Pipeline) release(ctx context.Context, key string) {
	if err := p.guard.Release(ctx, key); err != nil {
		p.logger.ErrorContext(ctx, "failed to release submit guard", logger.Error(err))
	}
}

func (p *Pipeline) notify(ctx context.Context, session, key string, level toast.Level) {
	if err := p.notifier.Notify(ctx, session, p.translate(ctx, key), level); err != nil {
		p.logger.ErrorContext(ctx, "failed to show toast",
			logger.Error(err),
			slog.String("message_key", key),
		)
	}
}

func (p *Pipeline) effect(ctx context.Context, name string, fn func() error) {
	if err := fn(); err != nil {
		p.logger.WarnContext(ctx, "surface update failed", logger.Event(name), logger.Error(err))
	}
}
