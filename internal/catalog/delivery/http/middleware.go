package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/stockly/stock-management/pkg/logger"
)

// RegisterMiddlewares attaches logging and tracing to the router
func RegisterMiddlewares(router *mux.Router) {
	router.Use(LoggingMiddleware)
	router.Use(func(next http.Handler) http.Handler {
		return TracingMiddleware("catalog-http", next)
	})
}

// TracingMiddleware wraps HTTP handlers with OpenTelemetry tracing
func TracingMiddleware(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operationName)
}

// LoggingMiddleware logs HTTP requests with structured logging
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logEvent := logger.WithContext(r.Context()).Info()
		if ww.statusCode >= 400 {
			logEvent = logger.WithContext(r.Context()).Error()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("tenant_id", r.Header.Get(TenantHeader)).
			Int("status", ww.statusCode).
			Dur("duration", duration).
			Msg("HTTP request completed")
	})
}
