package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contactkit/modules/contactform"
	"github.com/dmitrymomot/contactkit/pkg/clientip"
	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/cookie"
	"github.com/dmitrymomot/contactkit/pkg/email"
	"github.com/dmitrymomot/contactkit/pkg/httpserver"
	"github.com/dmitrymomot/contactkit/pkg/i18n"
	"github.com/dmitrymomot/contactkit/pkg/inflight"
	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/ratelimiter"
	"github.com/dmitrymomot/contactkit/pkg/redis"
	"github.com/dmitrymomot/contactkit/pkg/requestid"
	"github.com/dmitrymomot/contactkit/pkg/session"
	"github.com/dmitrymomot/contactkit/pkg/toast"
)

const toastBufferSize = 16

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log, err := logger.NewFromConfig(s.Logger, logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			session.LoggerExtractor(),
		))
		if err != nil {
			return err
		}
		logger.SetAsDefault(log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, s, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, s settings, log *slog.Logger) error {
	stopHooks := []httpserver.Option{}

	var (
		guard    inflight.Guard = inflight.NewMemoryGuard()
		store    ratelimiter.Store
		sessions session.Store
		rdb      *goredis.Client
	)
	if s.Redis.Enabled() {
		client, err := redis.Connect(ctx, s.Redis)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		rdb = client
		guard = inflight.NewRedisGuard(rdb, inflight.WithTTL(s.Contact.GuardTTL))
		store = ratelimiter.NewRedisStore(rdb, "contact:ratelimit")
		sessions = session.NewRedisStore(rdb, "contact:session:")
		stopHooks = append(stopHooks, httpserver.WithStopHook(func(context.Context) error {
			return rdb.Close()
		}))
	} else {
		mem := ratelimiter.NewMemoryStore()
		store = mem
		memSessions := session.NewMemoryStore(s.Session.CleanupInterval)
		sessions = memSessions
		stopHooks = append(stopHooks, httpserver.WithStopHook(func(context.Context) error {
			mem.Close()
			return memSessions.Close()
		}))
	}

	bucket, err := ratelimiter.NewBucket(store, s.RateLimit)
	if err != nil {
		return fmt.Errorf("creating rate limiter: %w", err)
	}

	cookieCfg := s.Cookie
	if cookieCfg.Secrets == "" {
		secret, err := cookie.GenerateSecret()
		if err != nil {
			return fmt.Errorf("generating cookie secret: %w", err)
		}
		cookieCfg.Secrets = secret
		log.WarnContext(ctx, "COOKIE_SECRETS is not set, visitor sessions end on restart")
	}
	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return fmt.Errorf("creating cookie manager: %w", err)
	}
	sessionManager, err := session.New(
		session.WithConfig(s.Session),
		session.WithCookieManager(cookies),
		session.WithStore(sessions),
		session.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("creating session manager: %w", err)
	}

	deliverer := toast.NewBroadcastDeliverer(toastBufferSize, toast.WithBroadcastLogger(log))
	stopHooks = append(stopHooks, httpserver.WithStopHook(func(context.Context) error {
		return deliverer.Close()
	}))
	toasts := toast.NewManager(toast.NewMemoryStorage(), deliverer, toast.WithLogger(log))

	tr, err := contactform.NewTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}

	opts := []contact.Option{
		contact.WithGuard(guard),
		contact.WithTranslator(contactform.MessageTranslator(tr)),
		contact.WithLogger(log),
	}
	if s.Contact.Credentials().Configured() {
		sender, err := email.New(s.Email)
		if err != nil {
			return fmt.Errorf("creating email sender: %w", err)
		}
		opts = append(opts, contact.WithDeliverer(sender))
	} else {
		log.WarnContext(ctx, "email delivery is not configured, submissions open the mail client")
	}

	pipeline, err := contact.NewPipeline(s.Contact, toasts, opts...)
	if err != nil {
		return fmt.Errorf("creating contact pipeline: %w", err)
	}

	svc := contactform.NewService(s.Site, pipeline, toasts, deliverer,
		contactform.WithTranslator(tr),
		contactform.WithRateLimiter(bucket),
		contactform.WithSessions(sessionManager),
		contactform.WithLogger(log),
	)

	checks := map[string]httpserver.CheckFunc{}
	if rdb != nil {
		checks["redis"] = redis.Healthcheck(rdb)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		clientip.NewResolver().Middleware,
		middleware.Recoverer,
		i18n.Middleware(i18n.NewLangExtractor(tr.SupportedLanguages())),
	)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks))
	r.Mount("/", svc.Handler())

	srv := httpserver.New(s.HTTP, append(stopHooks, httpserver.WithLogger(log))...)
	return srv.Run(ctx, http.Handler(r))
}
