package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactkit/pkg/binder"
	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/requestid"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Message    string
	StatusCode int
	RequestID  string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page for regular HTTP requests. Without it a
	// plain text error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a toast patched into ToastTarget for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// Notify, when set, replaces ErrorToast: the error is shown to DataStar
	// clients through Notify instead of a patch on the request stream.
	Notify func(ctx Context, info ErrorInfo) error

	// Translate resolves message keys. The key itself is shown without it.
	Translate func(ctx context.Context, key string) string

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

func determineErrorType(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return "error"
	}
	return "warning"
}

func determineLogLevel(statusCode int) slog.Level {
	if statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps err to a status code and message key.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{StatusCode: http.StatusInternalServerError, Key: ErrInternalServerError.Key}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Key = "validation_failed"
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	case errors.Is(err, binder.ErrRequestBodyTooLarge):
		info.StatusCode = ErrRequestTooLarge.Code
		info.Key = ErrRequestTooLarge.Key
	case errors.Is(err, binder.ErrFailedToParseForm), errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrUnsupportedTarget), errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = ErrBadRequest.Code
		info.Key = ErrBadRequest.Key
	}

	info.Message = info.Key
	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// NewErrorHandler creates an error handler that answers in the format the
// client asked for: a toast for DataStar, the JSON envelope for API clients
// and an error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())

		info := ClassifyError(err)
		if cfg.Translate != nil {
			info.Message = cfg.Translate(ctx, info.Key)
		}

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		switch {
		case IsDataStar(r):
			renderToast(ctx, cfg, info, reqID, log)
		case WantsJSON(r):
			resp := JSONError(err, WithJSONStatus(info.StatusCode), WithJSONMessage(info.Message))
			if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.Error("failed to render json error", logger.Error(renderErr))
			}
		default:
			renderPage(ctx, cfg, info, reqID, log)
		}
	}
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	if cfg.Notify != nil {
		if err := cfg.Notify(ctx, info); err != nil {
			log.Error("failed to notify error", logger.RequestID(reqID), logger.Error(err))
		}
		return
	}
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured for DataStar request", logger.RequestID(reqID))
		return
	}

	component := cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: reqID})
	if err := ctx.SSE().PatchElementTempl(component, WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend)); err != nil {
		log.Error("failed to render error toast", logger.RequestID(reqID), logger.Error(err))
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{Message: info.Message, StatusCode: info.StatusCode, RequestID: reqID})
	if err := TemplWithStatus(info.StatusCode, page).Render(w, ctx.Request()); err != nil {
		log.Error("failed to render error page", logger.RequestID(reqID), logger.Error(err))
	}
}
