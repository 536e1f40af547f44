// Package httpserver runs an http.Handler until a context is canceled and
// then shuts it down gracefully. It also provides liveness and readiness
// handlers for orchestrator probes.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
package httpserver
