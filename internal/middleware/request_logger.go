package middleware

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-care-manager/internal/platform/logger"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// RequestLogger registra una línea por request (método, path, status, duración, request id)
// y deja en el contexto un logger con el request_id ya cargado.
// Debe ir después de chimw.RequestID.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), loggerKey, reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				reqLog.Error("http request", fields)
				return
			}
			reqLog.Info("http request", fields)
		})
	}
}

// LoggerFrom devuelve el logger del request o fallback si no hay ninguno.
func LoggerFrom(ctx context.Context, fallback logger.Logger) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	if fallback == nil {
		return logger.Nop()
	}
	return fallback
}
